package dtc

type OpenOrdersRequestMessage struct {
	*Layout
	RequestID            Field[int32]
	RequestAllOpenOrders Field[int32]
	ServerOrderID        TextField
}

var OpenOrdersRequest = func() *OpenOrdersRequestMessage {
	b := newBuilder(TypeOpenOrdersRequest)
	return &OpenOrdersRequestMessage{
		Layout:               b.layout,
		RequestID:            b.int32("RequestID"),
		RequestAllOpenOrders: b.int32("RequestAllOpenOrders").Default(1),
		ServerOrderID:        b.text("ServerOrderID", OrderIDLength),
	}
}()

// OrderUpdateReportMessage reports the state of one order, either
// unsolicited or as part of an open orders response.
type OrderUpdateReportMessage struct {
	*Layout
	RequestID             Field[int32]
	TotalNumberMessages   Field[int32]
	MessageNumber         Field[int32]
	Symbol                TextField
	Exchange              TextField
	PreviousServerOrderID TextField
	ServerOrderID         TextField
	ClientOrderID         TextField
	ExchangeOrderID       TextField
	OrderStatus           Field[OrderStatus]
	ExecutionType         Field[ExecutionType]
	OrderType             Field[OrderType]
	BuySell               Field[BuySell]
	Price1                Field[float64]
	Price2                Field[float64]
	TimeInForce           Field[TimeInForce]
	GoodTillDateTimeUnix  Field[int64]
	OrderQuantity         Field[float64]
	FilledQuantity        Field[float64]
	RemainingQuantity     Field[float64]
	AverageFillPrice      Field[float64]
	LastFillPrice         Field[float64]
	LastFillDateTimeUnix  Field[int64]
	LastFillQuantity      Field[float64]
	UniqueFillExecutionID TextField
	TradeAccount          TextField
	InfoText              TextField
	NoneOrders            Field[uint8]
}

var OrderUpdateReport = func() *OrderUpdateReportMessage {
	b := newBuilder(TypeOrderUpdateReport)
	return &OrderUpdateReportMessage{
		Layout:                b.layout,
		RequestID:             b.int32("RequestID"),
		TotalNumberMessages:   b.int32("TotalNumberMessages"),
		MessageNumber:         b.int32("MessageNumber"),
		Symbol:                b.text("Symbol", SymbolLength),
		Exchange:              b.text("Exchange", ExchangeLength),
		PreviousServerOrderID: b.text("PreviousServerOrderID", OrderIDLength),
		ServerOrderID:         b.text("ServerOrderID", OrderIDLength),
		ClientOrderID:         b.text("ClientOrderID", OrderIDLength),
		ExchangeOrderID:       b.text("ExchangeOrderID", OrderIDLength),
		OrderStatus:           enumField[OrderStatus](b, "OrderStatus"),
		ExecutionType:         enumField[ExecutionType](b, "ExecutionType"),
		OrderType:             enumField[OrderType](b, "OrderType"),
		BuySell:               enumField[BuySell](b, "BuySell"),
		Price1:                b.float64("Price1").Unset(UnsetFloat64),
		Price2:                b.float64("Price2").Unset(UnsetFloat64),
		TimeInForce:           enumField[TimeInForce](b, "TimeInForce"),
		GoodTillDateTimeUnix:  b.int64("GoodTillDateTimeUnix"),
		OrderQuantity:         b.float64("OrderQuantity").Unset(UnsetFloat64),
		FilledQuantity:        b.float64("FilledQuantity").Unset(UnsetFloat64),
		RemainingQuantity:     b.float64("RemainingQuantity").Unset(UnsetFloat64),
		AverageFillPrice:      b.float64("AverageFillPrice").Unset(UnsetFloat64),
		LastFillPrice:         b.float64("LastFillPrice").Unset(UnsetFloat64),
		LastFillDateTimeUnix:  b.int64("LastFillDateTimeUnix"),
		LastFillQuantity:      b.float64("LastFillQuantity").Unset(UnsetFloat64),
		UniqueFillExecutionID: b.text("UniqueFillExecutionID", 64),
		TradeAccount:          b.text("TradeAccount", TradeAccountLength),
		InfoText:              b.text("InfoText", TextDescriptionLength),
		NoneOrders:            b.uint8("NoneOrders"),
	}
}()

type RequestRejectMessage struct {
	*Layout
	RequestID  Field[int32]
	RejectText TextField
}

func newRequestReject(t MessageType, requestIDName string) *RequestRejectMessage {
	b := newBuilder(t)
	return &RequestRejectMessage{
		Layout:     b.layout,
		RequestID:  b.int32(requestIDName),
		RejectText: b.text("RejectText", TextDescriptionLength),
	}
}

var (
	OpenOrdersRequestReject       = newRequestReject(TypeOpenOrdersRequestReject, "RequestID")
	CurrentPositionsRequestReject = newRequestReject(TypeCurrentPositionsRequestReject, "RequestID")
)

type HistoricalOrderFillsRequestMessage struct {
	*Layout
	RequestID     Field[int32]
	ServerOrderID TextField
	NumberOfDays  Field[int32]
	TradeAccount  TextField
}

var HistoricalOrderFillsRequest = func() *HistoricalOrderFillsRequestMessage {
	b := newBuilder(TypeHistoricalOrderFillsRequest)
	return &HistoricalOrderFillsRequestMessage{
		Layout:        b.layout,
		RequestID:     b.int32("RequestID"),
		ServerOrderID: b.text("ServerOrderID", OrderIDLength),
		NumberOfDays:  b.int32("NumberOfDays"),
		TradeAccount:  b.text("TradeAccount", TradeAccountLength),
	}
}()

type HistoricalOrderFillReportMessage struct {
	*Layout
	RequestID             Field[int32]
	TotalNumberMessages   Field[int32]
	MessageNumber         Field[int32]
	Symbol                TextField
	Exchange              TextField
	ServerOrderID         TextField
	BuySell               Field[BuySell]
	FillPrice             Field[float64]
	FillDateTimeUnix      Field[int64]
	FillQuantity          Field[float64]
	UniqueFillExecutionID TextField
	TradeAccount          TextField
	OpenClose             Field[OpenClose]
	NoneOrderFills        Field[uint8]
}

var HistoricalOrderFillReport = func() *HistoricalOrderFillReportMessage {
	b := newBuilder(TypeHistoricalOrderFillReport)
	return &HistoricalOrderFillReportMessage{
		Layout:                b.layout,
		RequestID:             b.int32("RequestID"),
		TotalNumberMessages:   b.int32("TotalNumberMessages"),
		MessageNumber:         b.int32("MessageNumber"),
		Symbol:                b.text("Symbol", SymbolLength),
		Exchange:              b.text("Exchange", ExchangeLength),
		ServerOrderID:         b.text("ServerOrderID", OrderIDLength),
		BuySell:               enumField[BuySell](b, "BuySell"),
		FillPrice:             b.float64("FillPrice"),
		FillDateTimeUnix:      b.int64("FillDateTimeUnix"),
		FillQuantity:          b.float64("FillQuantity"),
		UniqueFillExecutionID: b.text("UniqueFillExecutionID", 64),
		TradeAccount:          b.text("TradeAccount", TradeAccountLength),
		OpenClose:             enumField[OpenClose](b, "OpenClose"),
		NoneOrderFills:        b.uint8("NoneOrderFills"),
	}
}()

type CurrentPositionsRequestMessage struct {
	*Layout
	RequestID    Field[int32]
	TradeAccount TextField
}

var CurrentPositionsRequest = func() *CurrentPositionsRequestMessage {
	b := newBuilder(TypeCurrentPositionsRequest)
	return &CurrentPositionsRequestMessage{
		Layout:       b.layout,
		RequestID:    b.int32("RequestID"),
		TradeAccount: b.text("TradeAccount", TradeAccountLength),
	}
}()

type PositionReportMessage struct {
	*Layout
	RequestID           Field[int32]
	TotalNumberMessages Field[int32]
	MessageNumber       Field[int32]
	Symbol              TextField
	Exchange            TextField
	PositionQuantity    Field[float64]
	AveragePrice        Field[float64]
	PositionIdentifier  TextField
	TradeAccount        TextField
	NonePositions       Field[uint8]
	Unsolicited         Field[uint8]
}

var PositionReport = func() *PositionReportMessage {
	b := newBuilder(TypePositionReport)
	return &PositionReportMessage{
		Layout:              b.layout,
		RequestID:           b.int32("RequestID"),
		TotalNumberMessages: b.int32("TotalNumberMessages"),
		MessageNumber:       b.int32("MessageNumber"),
		Symbol:              b.text("Symbol", SymbolLength),
		Exchange:            b.text("Exchange", ExchangeLength),
		PositionQuantity:    b.float64("PositionQuantity"),
		AveragePrice:        b.float64("AveragePrice"),
		PositionIdentifier:  b.text("PositionIdentifier", OrderIDLength),
		TradeAccount:        b.text("TradeAccount", TradeAccountLength),
		NonePositions:       b.uint8("NonePositions"),
		Unsolicited:         b.uint8("Unsolicited"),
	}
}()
