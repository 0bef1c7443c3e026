package parser

// Field names a semantic value extracted from a tracking response.
type Field string

const (
	FieldStatus       Field = "status"
	FieldDeliveryDate Field = "deliveryDate"
	FieldPieces       Field = "pieces"
	FieldWeight       Field = "weight"
	FieldReceivedBy   Field = "receivedBy"
	FieldPickupDate   Field = "pickupDate"
	FieldTransitDays  Field = "transitDays"
	FieldDriver       Field = "driver"
	FieldBillOfLading Field = "bol"
	FieldDimWeight    Field = "dimWeight"
	FieldOtherRef     Field = "otherReference"
	FieldPurchaseOrd  Field = "po"
	FieldMessage      Field = "message"

	FieldEventWhen  Field = "event.when"
	FieldEventDesc  Field = "event.desc"
	FieldEventCity  Field = "event.city"
	FieldEventState Field = "event.state"

	FieldAddressLine1  Field = "address.line1"
	FieldAddressCity   Field = "address.city"
	FieldAddressState  Field = "address.state"
	FieldAddressPostal Field = "address.postalCode"

	FieldTerminalName  Field = "terminal.name"
	FieldTerminalPhone Field = "terminal.phone"
	FieldTerminalEmail Field = "terminal.email"

	FieldFaultMessage Field = "fault.message"
	FieldFaultReason  Field = "fault.reason"
)

// Block names a repeated or nested sub-record.
type Block string

const (
	BlockEvents      Block = "events"
	BlockShipper     Block = "shipper"
	BlockConsignee   Block = "consignee"
	BlockDestination Block = "destinationTerminal"
	BlockFault       Block = "fault"
)

// Fields maps each field to its tag rules, most specific and most recent
// schema first. Every tag ever observed for a field belongs here and nowhere else.
var Fields = map[Field][]Tag{
	FieldStatus:       Tags("statusDescription", "status", "shipmentStatus"),
	FieldDeliveryDate: Tags("deliveryDate", "estimatedDeliveryDate", "firstDeliveryDate", "deliveryApptDate", "appointmentDate"),
	FieldPieces:       Tags("pieces", "pieceCount", "totalPieces"),
	FieldWeight:       Tags("weight", "totalWeight"),
	FieldReceivedBy:   Tags("receivedBy", "receivedByName", "signedBy", "deliverySignature"),
	FieldPickupDate:   Tags("pickupDate", "pickupDateTime", "shipDate"),
	FieldTransitDays:  Tags("transitDays", "standardTransitDays"),
	FieldDriver:       Tags("driverName", "driver"),
	FieldBillOfLading: Tags("bol", "bolNumber", "billOfLading"),
	FieldDimWeight:    Tags("dimensionalWeight", "dimWeight"),
	FieldOtherRef:     Tags("otherReference", "otherRef", "referenceNumber"),
	FieldPurchaseOrd:  Tags("poNumber", "purchaseOrder", "purchaseOrderNumber", "po"),
	FieldMessage:      Tags("infoMessage", "message", "messageText"),

	FieldEventWhen:  Tags("eventDateTime", "eventTimestamp", "dateTime", "timestamp", "eventDate", "date"),
	FieldEventDesc:  Tags("eventDescription", "description", "statusDescription", "event", "activity"),
	FieldEventCity:  Tags("city", "eventCity"),
	FieldEventState: Tags("state", "eventState", "stateProvince"),

	FieldAddressLine1:  Tags("address1", "addressLine1", "line1", "streetAddress", "address"),
	FieldAddressCity:   Tags("city"),
	FieldAddressState:  Tags("state", "stateProvince"),
	FieldAddressPostal: Tags("zip", "zipCode", "postalCode"),

	FieldTerminalName:  Tags("terminalName", "name"),
	FieldTerminalPhone: Tags("phone", "phoneNumber", "telephone"),
	FieldTerminalEmail: Tags("email", "emailAddress"),

	FieldFaultMessage: Tags("faultstring", "faultMessage"),
	FieldFaultReason:  Tags("faultstring", "Text", "Reason", "message"),
}

var genericEvent = NewTag("event")

// Blocks maps each sub-record to its container tags.
var Blocks = map[Block]BlockSpec{
	BlockEvents: {
		Dialects: Tags("shipmentEvent", "eventDetail"),
		Fallback: &genericEvent,
		Exclude:  []string{"eventList", "events"},
	},
	BlockShipper:     {Dialects: Tags("shipper", "shipperParty", "shipperAddress")},
	BlockConsignee:   {Dialects: Tags("consignee", "consigneeParty", "consigneeAddress")},
	BlockDestination: {Dialects: Tags("destinationTerminal", "destTerminal", "deliveryTerminal")},
	BlockFault:       {Dialects: Tags("Fault")},
}

func field(doc string, f Field) string {
	return value(doc, Fields[f])
}

func single(doc string, b Block) (string, bool) {
	return SegmentFirst(doc, Blocks[b].Dialects...)
}
