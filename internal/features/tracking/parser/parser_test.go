package parser

import (
	"strings"
	"testing"

	"tracking-bridge/internal/features/tracking/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const estesResponse = `<?xml version="1.0" encoding="UTF-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">
  <soapenv:Body>
    <ship:trackingInfo xmlns:ship="http://ws.estesexpress.com/schema/2012/12/shipmenttracking">
      <ship:shipments>
        <ship:shipmentInfo>
          <ship:pro>1234567890</ship:pro>
          <ship:status>
            <ship:statusDescription> In Transit </ship:statusDescription>
          </ship:status>
          <ship:firstDeliveryDate>09/04/2025</ship:firstDeliveryDate>
          <ship:pieces>12</ship:pieces>
          <ship:weight>748</ship:weight>
          <ship:receivedBy></ship:receivedBy>
          <ship:pickupDate>2025-09-01</ship:pickupDate>
          <ship:transitDays>3</ship:transitDays>
          <ship:driverName>J. Smith</ship:driverName>
          <ship:bol>BOL-77</ship:bol>
          <ship:poNumber>PO&amp;1</ship:poNumber>
          <ship:shipper>
            <ship:name>ACME</ship:name>
            <ship:address1>1 Factory Rd</ship:address1>
            <ship:city>Raleigh</ship:city>
            <ship:state>NC</ship:state>
            <ship:zip>27601</ship:zip>
          </ship:shipper>
          <ship:consignee>
            <ship:city>Richmond</ship:city>
            <ship:state>VA</ship:state>
          </ship:consignee>
          <ship:destinationTerminal>
            <ship:name>Richmond Terminal</ship:name>
            <ship:phone>804-555-0100</ship:phone>
            <ship:email>ric@example.test</ship:email>
            <ship:address1>9 Dock St</ship:address1>
            <ship:city>Richmond</ship:city>
            <ship:state>VA</ship:state>
            <ship:zip>23230</ship:zip>
          </ship:destinationTerminal>
          <ship:eventList>
            <ship:shipmentEvent>
              <ship:eventDateTime>2025-09-03 08:12</ship:eventDateTime>
              <ship:event>Departed Terminal</ship:event>
              <ship:city>Richmond</ship:city>
              <ship:state>VA</ship:state>
            </ship:shipmentEvent>
            <ship:shipmentEvent>
              <ship:eventDateTime>2025-09-02 14:03</ship:eventDateTime>
              <ship:event>Arrived at Terminal</ship:event>
              <ship:city>Richmond</ship:city>
              <ship:state>VA</ship:state>
            </ship:shipmentEvent>
            <ship:shipmentEvent>
              <ship:eventDateTime>2025-09-01 09:55</ship:eventDateTime>
              <ship:event>Picked Up</ship:event>
              <ship:city>Raleigh</ship:city>
              <ship:state>NC</ship:state>
            </ship:shipmentEvent>
          </ship:eventList>
          <ship:messages>
            <ship:message>Appointment required</ship:message>
          </ship:messages>
        </ship:shipmentInfo>
      </ship:shipments>
    </ship:trackingInfo>
  </soapenv:Body>
</soapenv:Envelope>`

// TestNormalizeNamespaces verifies prefix stripping on opening and closing tags.
func TestNormalizeNamespaces(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Opening and closing", input: `<ship:pro>1</ship:pro>`, expected: `<pro>1</pro>`},
		{name: "Attributes untouched", input: `<soapenv:Envelope xmlns:soapenv="urn:x">`, expected: `<Envelope xmlns:soapenv="urn:x">`},
		{name: "Self closing", input: `<a:b/>`, expected: `<b/>`},
		{name: "Text untouched", input: `<a:msg>ns:value</a:msg>`, expected: `<msg>ns:value</msg>`},
		{name: "Multiple prefixes", input: `<a:b:c>x</a:b:c>`, expected: `<c>x</c>`},
		{name: "Declaration untouched", input: `<?xml version="1.0"?><x:y/>`, expected: `<?xml version="1.0"?><y/>`},
		{name: "Already normalized", input: `<pro>1</pro>`, expected: `<pro>1</pro>`},
		{name: "Malformed passes through", input: `<a:<b:c`, expected: `<a:<c`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeNamespaces(tt.input))
		})
	}
}

// TestNormalizeNamespaces_Idempotent verifies that normalizing twice equals normalizing once.
func TestNormalizeNamespaces_Idempotent(t *testing.T) {
	inputs := []string{
		estesResponse,
		`<a:b:1>`,
		`<a:b:c:>`,
		`</ x:y>`,
		`<_p.q-r:s.t>v</_p.q-r:s.t>`,
		`<<a:b>>`,
		`plain text`,
		``,
	}
	for _, in := range inputs {
		once := NormalizeNamespaces(in)
		assert.Equal(t, once, NormalizeNamespaces(once), "input: %q", in)
	}
}

// TestExtract_Precedence verifies that rule priority wins over document order.
func TestExtract_Precedence(t *testing.T) {
	doc := `<deliveryApptDate>09/20/2025</deliveryApptDate><firstDeliveryDate>09/04/2025</firstDeliveryDate>`

	got, ok := Extract(doc, Fields[FieldDeliveryDate]...)

	require.True(t, ok)
	assert.Equal(t, "09/04/2025", got)
}

// TestExtract_Tolerance verifies case, whitespace, attributes and empty values.
func TestExtract_Tolerance(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected string
		found    bool
	}{
		{name: "Case insensitive", doc: `<WEIGHT>748</WEIGHT>`, expected: "748", found: true},
		{name: "Whitespace inside tags", doc: `< weight >  748 </ weight >`, expected: "748", found: true},
		{name: "Attributes", doc: `<weight unit="lb">748</weight>`, expected: "748", found: true},
		{name: "Empty first occurrence skipped", doc: `<weight> </weight><weight>9</weight>`, expected: "9", found: true},
		{name: "Self closing ignored", doc: `<weight/><totalWeight>5</totalWeight>`, expected: "5", found: true},
		{name: "Self closing with attributes ignored", doc: `<weight xsi:nil="true"/><pieces>1</pieces>`, found: false},
		{name: "Entities decoded", doc: `<weight>1 &lt; 2</weight>`, expected: "1 < 2", found: true},
		{name: "Absent", doc: `<pieces>1</pieces>`, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.doc, Fields[FieldWeight]...)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestExtract_PrefixedTagNotConfused verifies that a rule never matches a longer tag name.
func TestExtract_PrefixedTagNotConfused(t *testing.T) {
	_, ok := Extract(`<eventDateTime>2025</eventDateTime>`, NewTag("event"))
	assert.False(t, ok)
}

// TestExtractAll verifies that all values of the first matching rule are returned.
func TestExtractAll(t *testing.T) {
	doc := `<message>a</message><infoMessage>b</infoMessage><message>c</message>`

	assert.Equal(t, []string{"b"}, ExtractAll(doc, Fields[FieldMessage]...))
	assert.Equal(t, []string{"a", "c"}, ExtractAll(doc, NewTag("message")))
	assert.Nil(t, ExtractAll(doc, NewTag("missing")))
}

// TestSegment_DialectExclusivity verifies that generic blocks are ignored once a dialect matched.
func TestSegment_DialectExclusivity(t *testing.T) {
	doc := strings.Repeat(`<shipmentEvent><event>x</event></shipmentEvent>`, 3) +
		strings.Repeat(`<event><eventDateTime>t</eventDateTime></event>`, 2)

	blocks := Segment(doc, Blocks[BlockEvents])

	assert.Len(t, blocks, 3)
	assert.Len(t, events(doc), 3)
}

// TestSegment_DialectPriority verifies that the first matching dialect wins and dialects are not merged.
func TestSegment_DialectPriority(t *testing.T) {
	doc := `<eventDetail><event>b</event></eventDetail><shipmentEvent><event>a</event></shipmentEvent>`

	blocks := Segment(doc, Blocks[BlockEvents])

	require.Len(t, blocks, 1)
	assert.Equal(t, `<event>a</event>`, blocks[0])
}

// TestSegment_GenericFallback verifies fallback with wrapper exclusion and nesting.
func TestSegment_GenericFallback(t *testing.T) {
	doc := `<event><eventList>
		<event><eventDateTime>1</eventDateTime><event>Picked Up</event></event>
		<event><eventDateTime>2</eventDateTime><event>Delivered</event></event>
	</eventList></event>`

	got := events(doc)

	require.Len(t, got, 2)
	assert.Equal(t, domain.EventRecord{When: "1", Description: "Picked Up"}, got[0])
	assert.Equal(t, domain.EventRecord{When: "2", Description: "Delivered"}, got[1])
}

// TestSegment_SkipsSelfClosingAndUnterminated verifies degenerate containers.
func TestSegment_SkipsSelfClosingAndUnterminated(t *testing.T) {
	doc := `<shipmentEvent/><shipmentEvent attr="1" /><shipmentEvent><city>A</city></shipmentEvent><shipmentEvent><city>B</city>`

	blocks := Segment(doc, Blocks[BlockEvents])

	require.Len(t, blocks, 1)
	assert.Equal(t, `<city>A</city>`, blocks[0])
}

// TestSegment_UnclosedContainerKeepsLaterBlocks verifies that a container
// missing its closing tag does not hide the complete blocks after it.
func TestSegment_UnclosedContainerKeepsLaterBlocks(t *testing.T) {
	doc := `<r><shipmentEvent><event>Broken` +
		`<shipmentEvent><eventDateTime>1</eventDateTime><event>Picked Up</event></shipmentEvent>` +
		`<shipmentEvent><eventDateTime>2</eventDateTime><event>Delivered</event></shipmentEvent></r>`

	blocks := Segment(doc, Blocks[BlockEvents])
	require.Len(t, blocks, 2)

	outcome := Assemble(doc)
	require.True(t, outcome.OK())
	require.Len(t, outcome.Record.Events, 2)
	assert.Equal(t, domain.EventRecord{When: "1", Description: "Picked Up"}, outcome.Record.Events[0])
	assert.Equal(t, domain.EventRecord{When: "2", Description: "Delivered"}, outcome.Record.Events[1])
}

// TestSegment_NestedAfterUnclosed verifies pairing when an unclosed tag precedes a nested pair.
func TestSegment_NestedAfterUnclosed(t *testing.T) {
	doc := `<event>open <event><event>inner</event></event><event>last</event>`

	blocks := elements(doc, NewTag("event"))

	require.Len(t, blocks, 2)
	assert.Equal(t, `<event>inner</event>`, blocks[0])
	assert.Equal(t, `last`, blocks[1])
}

// TestSegmentFirst verifies single-container lookup.
func TestSegmentFirst(t *testing.T) {
	block, ok := SegmentFirst(`<x/><consigneeAddress><city>C</city></consigneeAddress>`, Blocks[BlockConsignee].Dialects...)
	require.True(t, ok)
	assert.Equal(t, `<city>C</city>`, block)

	_, ok = SegmentFirst(`<shipper></shipper>`, Blocks[BlockConsignee].Dialects...)
	assert.False(t, ok)
}

// TestAssemble_FullRecord verifies assembly of a namespaced carrier response.
func TestAssemble_FullRecord(t *testing.T) {
	outcome := Assemble(estesResponse)

	require.True(t, outcome.OK())
	r := outcome.Record
	assert.Equal(t, "In Transit", r.Status)
	assert.Equal(t, "09/04/2025", r.EstimatedDelivery)
	assert.Equal(t, "12", r.Pieces)
	assert.Equal(t, "748", r.Weight)
	assert.Empty(t, r.ReceivedBy)
	assert.Equal(t, "2025-09-01", r.Shipment.PickupDate)
	assert.Equal(t, "3", r.Shipment.TransitDays)
	assert.Equal(t, "J. Smith", r.Shipment.Driver)
	assert.Equal(t, "BOL-77", r.References.BillOfLading)
	assert.Equal(t, "PO&1", r.References.PurchaseOrder)
	assert.Empty(t, r.References.DimensionalWeight)

	require.NotNil(t, r.Shipment.Shipper)
	assert.Equal(t, "1 Factory Rd, Raleigh, NC, 27601", r.Shipment.Shipper.DisplayText)
	require.NotNil(t, r.Shipment.Consignee)
	assert.Equal(t, "Richmond, VA", r.Shipment.Consignee.DisplayText)

	require.NotNil(t, r.DestinationTerminal)
	assert.Equal(t, "Richmond Terminal", r.DestinationTerminal.Name)
	assert.Equal(t, "804-555-0100", r.DestinationTerminal.Phone)
	assert.Equal(t, "ric@example.test", r.DestinationTerminal.Email)
	assert.Equal(t, "9 Dock St, Richmond, VA, 23230", r.DestinationTerminal.Address.DisplayText)

	require.Len(t, r.Events, 3)
	assert.Equal(t, domain.EventRecord{When: "2025-09-03 08:12", Description: "Departed Terminal", City: "Richmond", State: "VA"}, r.Events[0])
	assert.Equal(t, "Picked Up", r.Events[2].Description)

	assert.Equal(t, []string{"Appointment required"}, r.Messages)
}

// TestAssemble_NoData verifies that incidental fields alone do not make a result.
func TestAssemble_NoData(t *testing.T) {
	doc := `<trackingInfo><pieces>3</pieces><weight>100</weight><bol>X</bol></trackingInfo>`

	outcome := Assemble(doc)

	assert.False(t, outcome.OK())
	assert.Equal(t, domain.NoTrackingResult, outcome.Reason)
}

// TestAssemble_PartialRecords verifies that any single evidentiary field is enough.
func TestAssemble_PartialRecords(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "Status only", doc: `<status>Delivered</status>`},
		{name: "Delivery date only", doc: `<appointmentDate>10/01/2025</appointmentDate>`},
		{name: "Events only", doc: `<eventDetail><description>Picked Up</description></eventDetail>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := Assemble(tt.doc)
			require.True(t, outcome.OK())
			assert.Nil(t, outcome.Record.Shipment.Shipper)
			assert.Nil(t, outcome.Record.DestinationTerminal)
		})
	}
}

// TestAssemble_EventsKeepDuplicatesDropEmpties verifies event sequence rules.
func TestAssemble_EventsKeepDuplicatesDropEmpties(t *testing.T) {
	ev := `<shipmentEvent><event>Picked Up</event><city>Raleigh</city></shipmentEvent>`
	doc := ev + `<shipmentEvent><unknown>x</unknown></shipmentEvent>` + ev

	outcome := Assemble(doc)

	require.True(t, outcome.OK())
	require.Len(t, outcome.Record.Events, 2)
	assert.Equal(t, outcome.Record.Events[0], outcome.Record.Events[1])
}

// TestAssemble_StatusPrefersShipmentLevel verifies that an event description
// never shadows the shipment status.
func TestAssemble_StatusPrefersShipmentLevel(t *testing.T) {
	doc := `<shipment><status>Delivered</status><events>` +
		`<shipmentEvent><statusDescription>Picked up</statusDescription></shipmentEvent>` +
		`</events></shipment>`

	outcome := Assemble(doc)

	require.True(t, outcome.OK())
	assert.Equal(t, "Delivered", outcome.Record.Status)
	require.Len(t, outcome.Record.Events, 1)
	assert.Equal(t, "Picked up", outcome.Record.Events[0].Description)

	outcome = Assemble(`<shipmentEvent><statusDescription>Picked up</statusDescription></shipmentEvent>`)

	require.True(t, outcome.OK())
	assert.Equal(t, "Picked up", outcome.Record.Status)
}

// TestAssemble_EmptyAddressContainer verifies that an address container without data yields none.
func TestAssemble_EmptyAddressContainer(t *testing.T) {
	outcome := Assemble(`<status>In Transit</status><shipper><name>ACME</name></shipper>`)

	require.True(t, outcome.OK())
	assert.Nil(t, outcome.Record.Shipment.Shipper)
}

// TestClassify verifies fault detection.
func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		transportOK bool
		usable      bool
		fault       string
	}{
		{
			name:        "Transport failure",
			body:        domain.TransportErrorMarker + ": dial tcp: refused",
			transportOK: false,
			fault:       TransportFailureMessage,
		},
		{
			name:        "SOAP 1.1 fault",
			body:        `<soap:Envelope><soap:Body><soap:Fault><faultcode>soap:Client</faultcode><faultstring>Invalid PRO number</faultstring></soap:Fault></soap:Body></soap:Envelope>`,
			transportOK: true,
			fault:       "Invalid PRO number",
		},
		{
			name:        "SOAP 1.2 fault",
			body:        `<env:Fault><env:Code><env:Value>env:Sender</env:Value></env:Code><env:Reason><env:Text xml:lang="en">Authentication failed</env:Text></env:Reason></env:Fault>`,
			transportOK: true,
			fault:       "Authentication failed",
		},
		{
			name:        "Fault message tag outside envelope",
			body:        `<trackingInfo><ship:faultMessage>Service unavailable</ship:faultMessage></trackingInfo>`,
			transportOK: true,
			fault:       "Service unavailable",
		},
		{
			name:        "Fault envelope with bare text",
			body:        `<Fault>  backend   down </Fault>`,
			transportOK: true,
			fault:       "backend down",
		},
		{
			name:        "Empty fault envelope",
			body:        `<Fault> <detail/> </Fault>`,
			transportOK: true,
			fault:       DefaultFaultMessage,
		},
		{
			name:        "Tracking payload",
			body:        estesResponse,
			transportOK: true,
			usable:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usable, fault := Classify(tt.body, tt.transportOK)
			assert.Equal(t, tt.usable, usable)
			assert.Equal(t, tt.fault, fault)
		})
	}
}
