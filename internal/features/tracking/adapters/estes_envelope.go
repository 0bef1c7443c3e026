package adapter

import (
	"fmt"

	"github.com/beevik/etree"
)

const (
	soapEnvelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"
	estesAuthNS    = "http://ws.estesexpress.com/shipmenttracking"
	estesSearchNS  = "http://ws.estesexpress.com/schema/2012/12/shipmenttracking"
)

// Credentials are the carrier account used in the request header.
type Credentials struct {
	User     string
	Password string
}

// Valid reports whether both parts are present.
func (c Credentials) Valid() bool {
	return c.User != "" && c.Password != ""
}

// buildSearchEnvelope renders the shipment search request. Values are
// escaped by the XML writer, so credentials may contain markup characters.
func buildSearchEnvelope(creds Credentials, requestID, pro string) (string, error) {
	doc := etree.NewDocument()

	env := doc.CreateElement("soapenv:Envelope")
	env.CreateAttr("xmlns:soapenv", soapEnvelopeNS)
	env.CreateAttr("xmlns:ship", estesAuthNS)
	env.CreateAttr("xmlns:s1", estesSearchNS)

	auth := env.CreateElement("soapenv:Header").CreateElement("ship:auth")
	auth.CreateElement("ship:user").SetText(creds.User)
	auth.CreateElement("ship:password").SetText(creds.Password)

	search := env.CreateElement("soapenv:Body").CreateElement("s1:search")
	search.CreateElement("s1:requestID").SetText(requestID)
	search.CreateElement("s1:pro").SetText(pro)

	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("failed to render search envelope: %w", err)
	}
	return out, nil
}
