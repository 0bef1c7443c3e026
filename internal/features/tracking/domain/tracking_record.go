package domain

import "strings"

// TrackingRecord is the normalized tracking result for a single shipment.
type TrackingRecord struct {
	// Carrier is the display name of the carrier (e.g., Estes).
	Carrier string `json:"carrier" yaml:"carrier" msgpack:"carrier"`
	// Identifier is the normalized shipment identifier (PRO number).
	Identifier string `json:"pro" yaml:"pro" msgpack:"pro"`
	// Status is the current shipment status as reported by the carrier.
	Status string `json:"status,omitempty" yaml:"status" msgpack:"status"`
	// EstimatedDelivery is the delivery estimate, verbatim.
	EstimatedDelivery string `json:"estimatedDelivery,omitempty" yaml:"estimatedDelivery" msgpack:"estimated_delivery"`
	// Pieces is the piece count, verbatim.
	Pieces string `json:"pieces,omitempty" yaml:"pieces" msgpack:"pieces"`
	// Weight is the shipment weight, verbatim.
	Weight string `json:"weight,omitempty" yaml:"weight" msgpack:"weight"`
	// ReceivedBy is the name of the receiving party.
	ReceivedBy string `json:"receivedBy,omitempty" yaml:"receivedBy" msgpack:"received_by"`
	// DestinationTerminal is the carrier terminal serving the consignee.
	DestinationTerminal *Terminal `json:"destinationTerminal,omitempty" yaml:"destinationTerminal" msgpack:"destination_terminal"`
	// Shipment holds pickup and party details.
	Shipment Shipment `json:"shipment" yaml:"shipment" msgpack:"shipment"`
	// References holds shipment reference numbers.
	References References `json:"references" yaml:"references" msgpack:"references"`
	// Events is the shipment history in document order.
	Events []EventRecord `json:"events" yaml:"events" msgpack:"events"`
	// Messages are informational messages returned by the carrier.
	Messages []string `json:"messages,omitempty" yaml:"messages" msgpack:"messages"`
	// Link is the carrier-hosted tracking page for this shipment.
	Link string `json:"link,omitempty" yaml:"link" msgpack:"link"`
}

// EventRecord is a single entry of the shipment history.
type EventRecord struct {
	When        string `json:"when,omitempty" yaml:"when" msgpack:"when"`
	Description string `json:"desc,omitempty" yaml:"desc" msgpack:"desc"`
	City        string `json:"city,omitempty" yaml:"city" msgpack:"city"`
	State       string `json:"state,omitempty" yaml:"state" msgpack:"state"`
}

// IsEmpty reports whether no field of the event carries a value.
func (e EventRecord) IsEmpty() bool {
	return e.When == "" && e.Description == "" && e.City == "" && e.State == ""
}

// AddressRecord is a postal address. DisplayText is derived from the other
// fields and is empty iff all of them are empty.
type AddressRecord struct {
	Line1       string `json:"line1,omitempty" yaml:"line1" msgpack:"line1"`
	City        string `json:"city,omitempty" yaml:"city" msgpack:"city"`
	State       string `json:"state,omitempty" yaml:"state" msgpack:"state"`
	PostalCode  string `json:"postalCode,omitempty" yaml:"postalCode" msgpack:"postal_code"`
	DisplayText string `json:"displayText,omitempty" yaml:"displayText" msgpack:"display_text"`
}

// NewAddressRecord builds an AddressRecord and derives its display text.
func NewAddressRecord(line1, city, state, postalCode string) AddressRecord {
	a := AddressRecord{
		Line1:      strings.TrimSpace(line1),
		City:       strings.TrimSpace(city),
		State:      strings.TrimSpace(state),
		PostalCode: strings.TrimSpace(postalCode),
	}
	a.DisplayText = formatAddress(a)
	return a
}

// IsEmpty reports whether the address carries no data.
func (a AddressRecord) IsEmpty() bool {
	return a.Line1 == "" && a.City == "" && a.State == "" && a.PostalCode == ""
}

func formatAddress(a AddressRecord) string {
	locality := joinNonEmpty(", ", a.City, a.State)
	return joinNonEmpty(", ", a.Line1, locality, a.PostalCode)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// Terminal is a carrier terminal with its contact details.
type Terminal struct {
	Name    string        `json:"name,omitempty" yaml:"name" msgpack:"name"`
	Phone   string        `json:"phone,omitempty" yaml:"phone" msgpack:"phone"`
	Email   string        `json:"email,omitempty" yaml:"email" msgpack:"email"`
	Address AddressRecord `json:"address" yaml:"address" msgpack:"address"`
}

// Shipment groups pickup details and the shipping parties.
type Shipment struct {
	PickupDate  string         `json:"pickupDate,omitempty" yaml:"pickupDate" msgpack:"pickup_date"`
	TransitDays string         `json:"transitDays,omitempty" yaml:"transitDays" msgpack:"transit_days"`
	Driver      string         `json:"driver,omitempty" yaml:"driver" msgpack:"driver"`
	Shipper     *AddressRecord `json:"shipper,omitempty" yaml:"shipper" msgpack:"shipper"`
	Consignee   *AddressRecord `json:"consignee,omitempty" yaml:"consignee" msgpack:"consignee"`
}

// References holds the shipment reference numbers.
type References struct {
	BillOfLading      string `json:"bol,omitempty" yaml:"bol" msgpack:"bol"`
	DimensionalWeight string `json:"dimWeight,omitempty" yaml:"dimWeight" msgpack:"dim_weight"`
	Other             string `json:"other,omitempty" yaml:"other" msgpack:"other"`
	PurchaseOrder     string `json:"po,omitempty" yaml:"po" msgpack:"po"`
}
