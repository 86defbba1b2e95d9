package dtc

type SubmitNewSingleOrderMessage struct {
	*Layout
	Symbol               TextField
	Exchange             TextField
	ClientOrderID        TextField
	OrderType            Field[OrderType]
	BuySell              Field[BuySell]
	Price1               Field[float64]
	Price2               Field[float64]
	TimeInForce          Field[TimeInForce]
	GoodTillDateTimeUnix Field[int64]
	OrderQuantity        Field[float64]
	TradeAccount         TextField
	IsAutomatedOrder     Field[uint8]
	IsParentOrder        Field[uint8]
	Price1AsInteger      Field[int32]
	Price2AsInteger      Field[int32]
	Divisor              Field[float32]
}

var SubmitNewSingleOrder = func() *SubmitNewSingleOrderMessage {
	b := newBuilder(TypeSubmitNewSingleOrder)
	return &SubmitNewSingleOrderMessage{
		Layout:               b.layout,
		Symbol:               b.text("Symbol", SymbolLength),
		Exchange:             b.text("Exchange", ExchangeLength),
		ClientOrderID:        b.text("ClientOrderID", OrderIDLength),
		OrderType:            enumField[OrderType](b, "OrderType"),
		BuySell:              enumField[BuySell](b, "BuySell"),
		Price1:               b.float64("Price1"),
		Price2:               b.float64("Price2"),
		TimeInForce:          enumField[TimeInForce](b, "TimeInForce"),
		GoodTillDateTimeUnix: b.int64("GoodTillDateTimeUnix"),
		OrderQuantity:        b.float64("OrderQuantity"),
		TradeAccount:         b.text("TradeAccount", TradeAccountLength),
		IsAutomatedOrder:     b.uint8("IsAutomatedOrder"),
		IsParentOrder:        b.uint8("IsParentOrder"),
		Price1AsInteger:      b.int32("Price1AsInteger"),
		Price2AsInteger:      b.int32("Price2AsInteger"),
		Divisor:              b.float32("Divisor"),
	}
}()

// SubmitNewOCOOrderMessage submits two orders where filling one cancels
// the other.
type SubmitNewOCOOrderMessage struct {
	*Layout
	Symbol                     TextField
	Exchange                   TextField
	ClientOrderID1             TextField
	OrderType1                 Field[OrderType]
	BuySell1                   Field[BuySell]
	Price1Order1               Field[float64]
	Price2Order1               Field[float64]
	OrderQuantity1             Field[float64]
	ClientOrderID2             TextField
	OrderType2                 Field[OrderType]
	BuySell2                   Field[BuySell]
	Price1Order2               Field[float64]
	Price2Order2               Field[float64]
	OrderQuantity2             Field[float64]
	TimeInForce                Field[TimeInForce]
	GoodTillDateTimeUnix       Field[int64]
	TradeAccount               TextField
	IsAutomatedOrder           Field[uint8]
	ParentTriggerClientOrderID TextField
}

var SubmitNewOCOOrder = func() *SubmitNewOCOOrderMessage {
	b := newBuilder(TypeSubmitNewOCOOrder)
	return &SubmitNewOCOOrderMessage{
		Layout:                     b.layout,
		Symbol:                     b.text("Symbol", SymbolLength),
		Exchange:                   b.text("Exchange", ExchangeLength),
		ClientOrderID1:             b.text("ClientOrderID_1", OrderIDLength),
		OrderType1:                 enumField[OrderType](b, "OrderType_1"),
		BuySell1:                   enumField[BuySell](b, "BuySell_1"),
		Price1Order1:               b.float64("Price1_1"),
		Price2Order1:               b.float64("Price2_1"),
		OrderQuantity1:             b.float64("OrderQuantity_1"),
		ClientOrderID2:             b.text("ClientOrderID_2", OrderIDLength),
		OrderType2:                 enumField[OrderType](b, "OrderType_2"),
		BuySell2:                   enumField[BuySell](b, "BuySell_2"),
		Price1Order2:               b.float64("Price1_2"),
		Price2Order2:               b.float64("Price2_2"),
		OrderQuantity2:             b.float64("OrderQuantity_2"),
		TimeInForce:                enumField[TimeInForce](b, "TimeInForce"),
		GoodTillDateTimeUnix:       b.int64("GoodTillDateTimeUnix"),
		TradeAccount:               b.text("TradeAccount", TradeAccountLength),
		IsAutomatedOrder:           b.uint8("IsAutomatedOrder"),
		ParentTriggerClientOrderID: b.text("ParentTriggerClientOrderID", OrderIDLength),
	}
}()

type CancelReplaceOrderMessage struct {
	*Layout
	ServerOrderID   TextField
	ClientOrderID   TextField
	Price1          Field[float64]
	Price2          Field[float64]
	OrderQuantity   Field[float64]
	TradeAccount    TextField
	Price1AsInteger Field[int32]
	Price2AsInteger Field[int32]
	Divisor         Field[float32]
}

var CancelReplaceOrder = func() *CancelReplaceOrderMessage {
	b := newBuilder(TypeCancelReplaceOrder)
	return &CancelReplaceOrderMessage{
		Layout:          b.layout,
		ServerOrderID:   b.text("ServerOrderID", OrderIDLength),
		ClientOrderID:   b.text("ClientOrderID", OrderIDLength),
		Price1:          b.float64("Price1"),
		Price2:          b.float64("Price2"),
		OrderQuantity:   b.float64("OrderQuantity"),
		TradeAccount:    b.text("TradeAccount", TradeAccountLength),
		Price1AsInteger: b.int32("Price1AsInteger"),
		Price2AsInteger: b.int32("Price2AsInteger"),
		Divisor:         b.float32("Divisor"),
	}
}()

type CancelOrderMessage struct {
	*Layout
	ServerOrderID TextField
	ClientOrderID TextField
	TradeAccount  TextField
	Symbol        TextField
	Exchange      TextField
}

var CancelOrder = func() *CancelOrderMessage {
	b := newBuilder(TypeCancelOrder)
	return &CancelOrderMessage{
		Layout:        b.layout,
		ServerOrderID: b.text("ServerOrderID", OrderIDLength),
		ClientOrderID: b.text("ClientOrderID", OrderIDLength),
		TradeAccount:  b.text("TradeAccount", TradeAccountLength),
		Symbol:        b.text("Symbol", SymbolLength),
		Exchange:      b.text("Exchange", ExchangeLength),
	}
}()
