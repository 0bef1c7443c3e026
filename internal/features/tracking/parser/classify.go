package parser

import "regexp"

// TransportFailureMessage is reported for attempts that never reached the upstream.
const TransportFailureMessage = "upstream transport failure"

// DefaultFaultMessage is reported for a fault envelope that carries no readable text.
const DefaultFaultMessage = "SOAP fault"

var (
	anyTag     = regexp.MustCompile(`<[^>]*>`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Classify decides whether a response body can be handed to Assemble. A
// transport failure is never usable. Otherwise a fault-message tag or a fault
// envelope makes the body unusable and its text is returned as the fault.
func Classify(body string, transportSucceeded bool) (usable bool, fault string) {
	if !transportSucceeded {
		return false, TransportFailureMessage
	}

	doc := NormalizeNamespaces(body)

	if msg, ok := Extract(doc, Fields[FieldFaultMessage]...); ok {
		return false, msg
	}

	block, ok := single(doc, BlockFault)
	if !ok {
		return true, ""
	}
	if msg, ok := Extract(block, Fields[FieldFaultReason]...); ok {
		return false, msg
	}
	if text := stripTags(block); text != "" {
		return false, text
	}
	return false, DefaultFaultMessage
}

func stripTags(block string) string {
	text := anyTag.ReplaceAllString(block, " ")
	return cleanValue(whitespace.ReplaceAllString(text, " "))
}
