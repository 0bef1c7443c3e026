package parser

import (
	"slices"

	"tracking-bridge/internal/features/tracking/domain"
)

// Assemble builds a tracking record from a response document. Every field is
// extracted independently, so a missing field never fails the record. When
// status, delivery estimate and events are all absent the outcome is a
// failure, whatever incidental fields (weight, pieces) were found.
//
// Carrier, identifier and link are left for the caller to fill in.
func Assemble(doc string) domain.ParseOutcome {
	doc = NormalizeNamespaces(doc)

	record := &domain.TrackingRecord{
		Status:            status(doc),
		EstimatedDelivery: field(doc, FieldDeliveryDate),
		Pieces:            field(doc, FieldPieces),
		Weight:            field(doc, FieldWeight),
		ReceivedBy:        field(doc, FieldReceivedBy),
		Events:            events(doc),
		Messages:          ExtractAll(doc, Fields[FieldMessage]...),
		Shipment: domain.Shipment{
			PickupDate:  field(doc, FieldPickupDate),
			TransitDays: field(doc, FieldTransitDays),
			Driver:      field(doc, FieldDriver),
			Shipper:     address(doc, BlockShipper),
			Consignee:   address(doc, BlockConsignee),
		},
		References: domain.References{
			BillOfLading:      field(doc, FieldBillOfLading),
			DimensionalWeight: field(doc, FieldDimWeight),
			Other:             field(doc, FieldOtherRef),
			PurchaseOrder:     field(doc, FieldPurchaseOrd),
		},
		DestinationTerminal: terminal(doc),
	}

	if record.Status == "" && record.EstimatedDelivery == "" && len(record.Events) == 0 {
		return domain.Failure(domain.NoTrackingResult)
	}
	return domain.Success(record)
}

// status prefers a shipment-level status. Event blocks are only searched
// when the shipment itself carries none.
func status(doc string) string {
	spec := Blocks[BlockEvents]
	containers := spec.Dialects
	if spec.Fallback != nil {
		containers = append(slices.Clone(containers), *spec.Fallback)
	}
	if s := field(withoutElements(doc, containers...), FieldStatus); s != "" {
		return s
	}
	return field(doc, FieldStatus)
}

// events returns the shipment history. Fully empty blocks are dropped;
// duplicates are kept.
func events(doc string) []domain.EventRecord {
	out := make([]domain.EventRecord, 0)
	for _, b := range Segment(doc, Blocks[BlockEvents]) {
		e := domain.EventRecord{
			When:        field(b, FieldEventWhen),
			Description: field(b, FieldEventDesc),
			City:        field(b, FieldEventCity),
			State:       field(b, FieldEventState),
		}
		if !e.IsEmpty() {
			out = append(out, e)
		}
	}
	return out
}

func addressIn(block string) domain.AddressRecord {
	return domain.NewAddressRecord(
		field(block, FieldAddressLine1),
		field(block, FieldAddressCity),
		field(block, FieldAddressState),
		field(block, FieldAddressPostal),
	)
}

// address returns nil when the container is absent or carries no address data.
func address(doc string, b Block) *domain.AddressRecord {
	block, ok := single(doc, b)
	if !ok {
		return nil
	}
	a := addressIn(block)
	if a.IsEmpty() {
		return nil
	}
	return &a
}

func terminal(doc string) *domain.Terminal {
	block, ok := single(doc, BlockDestination)
	if !ok {
		return nil
	}
	t := &domain.Terminal{
		Name:    field(block, FieldTerminalName),
		Phone:   field(block, FieldTerminalPhone),
		Email:   field(block, FieldTerminalEmail),
		Address: addressIn(block),
	}
	if t.Name == "" && t.Phone == "" && t.Email == "" && t.Address.IsEmpty() {
		return nil
	}
	return t
}
