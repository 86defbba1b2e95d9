package dtc

type MarketDataFeedStatusMessage struct {
	*Layout
	Status Field[FeedStatus]
}

var MarketDataFeedStatus = func() *MarketDataFeedStatusMessage {
	b := newBuilder(TypeMarketDataFeedStatus)
	return &MarketDataFeedStatusMessage{
		Layout: b.layout,
		Status: enumField[FeedStatus](b, "Status"),
	}
}()

type MarketDataFeedSymbolStatusMessage struct {
	*Layout
	MarketDataSymbolID Field[uint16]
	Status             Field[FeedStatus]
}

var MarketDataFeedSymbolStatus = func() *MarketDataFeedSymbolStatusMessage {
	b := newBuilder(TypeMarketDataFeedSymbolStatus)
	return &MarketDataFeedSymbolStatusMessage{
		Layout:             b.layout,
		MarketDataSymbolID: b.uint16("MarketDataSymbolID"),
		Status:             enumField[FeedStatus](b, "Status"),
	}
}()

// MarketDataRequestMessage subscribes to or unsubscribes from market data
// for a symbol. The client picks MarketDataSymbolID; the server tags every
// update for the symbol with it.
type MarketDataRequestMessage struct {
	*Layout
	RequestAction      Field[RequestAction]
	MarketDataSymbolID Field[uint16]
	Symbol             TextField
	Exchange           TextField
}

var MarketDataRequest = func() *MarketDataRequestMessage {
	b := newBuilder(TypeMarketDataRequest)
	return &MarketDataRequestMessage{
		Layout:             b.layout,
		RequestAction:      enumField[RequestAction](b, "RequestActionValue").Default(Subscribe),
		MarketDataSymbolID: b.uint16("MarketDataSymbolID"),
		Symbol:             b.text("Symbol", SymbolLength),
		Exchange:           b.text("Exchange", ExchangeLength),
	}
}()

type MarketDepthRequestMessage struct {
	*Layout
	RequestAction      Field[RequestAction]
	MarketDataSymbolID Field[uint16]
	Symbol             TextField
	Exchange           TextField
	NumberOfLevels     Field[int32]
}

var MarketDepthRequest = func() *MarketDepthRequestMessage {
	b := newBuilder(TypeMarketDepthRequest)
	return &MarketDepthRequestMessage{
		Layout:             b.layout,
		RequestAction:      enumField[RequestAction](b, "RequestActionValue").Default(Subscribe),
		MarketDataSymbolID: b.uint16("MarketDataSymbolID"),
		Symbol:             b.text("Symbol", SymbolLength),
		Exchange:           b.text("Exchange", ExchangeLength),
		NumberOfLevels:     b.int32("NumberOfLevels").Default(10),
	}
}()

type MarketDataRejectMessage struct {
	*Layout
	MarketDataSymbolID Field[uint16]
	RejectText         TextField
}

var MarketDataReject = func() *MarketDataRejectMessage {
	b := newBuilder(TypeMarketDataReject)
	return &MarketDataRejectMessage{
		Layout:             b.layout,
		MarketDataSymbolID: b.uint16("MarketDataSymbolID"),
		RejectText:         b.text("RejectText", TextDescriptionLength),
	}
}()

// MarketDataSnapshotMessage carries the full trading state of a symbol,
// sent once after subscribing.
type MarketDataSnapshotMessage struct {
	*Layout
	MarketDataSymbolID  Field[uint16]
	SettlementPrice     Field[float64]
	DailyOpen           Field[float64]
	DailyHigh           Field[float64]
	DailyLow            Field[float64]
	DailyVolume         Field[float64]
	DailyNumberOfTrades Field[uint32]
	// SharesOutstanding, OpenInterest and UnitsOutstanding share storage.
	SharesOutstanding     Field[uint32]
	OpenInterest          Field[uint32]
	UnitsOutstanding      Field[uint32]
	Bid                   Field[float64]
	Ask                   Field[float64]
	AskSize               Field[float64]
	BidSize               Field[float64]
	LastTradePrice        Field[float64]
	LastTradeSize         Field[float64]
	LastTradeDateTimeUnix Field[float64]
}

var MarketDataSnapshot = func() *MarketDataSnapshotMessage {
	b := newBuilder(TypeMarketDataSnapshot)
	m := &MarketDataSnapshotMessage{
		Layout:                b.layout,
		MarketDataSymbolID:    b.uint16("MarketDataSymbolID"),
		SettlementPrice:       b.float64("SettlementPrice"),
		DailyOpen:             b.float64("DailyOpen"),
		DailyHigh:             b.float64("DailyHigh"),
		DailyLow:              b.float64("DailyLow"),
		DailyVolume:           b.float64("DailyVolume"),
		DailyNumberOfTrades:   b.uint32("DailyNumberOfTrades"),
		SharesOutstanding:     b.uint32("SharesOutstanding"),
		Bid:                   b.float64("Bid"),
		Ask:                   b.float64("Ask"),
		AskSize:               b.float64("AskSize"),
		BidSize:               b.float64("BidSize"),
		LastTradePrice:        b.float64("LastTradePrice"),
		LastTradeSize:         b.float64("LastTradeSize"),
		LastTradeDateTimeUnix: b.float64("LastTradeDateTimeUnix"),
	}
	m.OpenInterest = m.SharesOutstanding
	m.UnitsOutstanding = m.SharesOutstanding
	return m
}()

type FundamentalDataResponseMessage struct {
	*Layout
	MarketDataSymbolID   Field[uint16]
	SymbolDescription    TextField
	TickSize             Field[float32]
	TickCurrencyValue    Field[float32]
	DisplayFormat        Field[DisplayFormat]
	BuyRolloverInterest  Field[float32]
	SellRolloverInterest Field[float32]
	OrderPriceMultiplier Field[float32]
}

var FundamentalDataResponse = func() *FundamentalDataResponseMessage {
	b := newBuilder(TypeFundamentalDataResponse)
	return &FundamentalDataResponseMessage{
		Layout:               b.layout,
		MarketDataSymbolID:   b.uint16("MarketDataSymbolID"),
		SymbolDescription:    b.text("SymbolDescription", SymbolDescriptionLength),
		TickSize:             b.float32("TickSize"),
		TickCurrencyValue:    b.float32("TickCurrencyValue"),
		DisplayFormat:        enumField[DisplayFormat](b, "DisplayFormat").Default(DisplayFormatUnset),
		BuyRolloverInterest:  b.float32("BuyRolloverInterest"),
		SellRolloverInterest: b.float32("SellRolloverInterest"),
		OrderPriceMultiplier: b.float32("OrderPriceMultiplier"),
	}
}()

// Depth array lengths of the full depth updates.
const (
	NumDepthLevels20 = 20
	NumDepthLevels10 = 10
)

type MarketDepthFullUpdateMessage struct {
	*Layout
	MarketDataSymbolID Field[uint16]
	BidDepth           DepthLevelsField
	AskDepth           DepthLevelsField
}

func newMarketDepthFullUpdate(t MessageType, levels int) *MarketDepthFullUpdateMessage {
	b := newBuilder(t)
	return &MarketDepthFullUpdateMessage{
		Layout:             b.layout,
		MarketDataSymbolID: b.uint16("MarketDataSymbolID"),
		BidDepth:           b.depth("BidDepth", levels),
		AskDepth:           b.depth("AskDepth", levels),
	}
}

var (
	MarketDepthFullUpdate20 = newMarketDepthFullUpdate(TypeMarketDepthFullUpdate20, NumDepthLevels20)
	MarketDepthFullUpdate10 = newMarketDepthFullUpdate(TypeMarketDepthFullUpdate10, NumDepthLevels10)
)

// MarketDepthSnapshotLevelMessage carries one price level of an initial
// depth snapshot. Snapshots arrive as a batch delimited by the first/last
// flags.
type MarketDepthSnapshotLevelMessage struct {
	*Layout
	MarketDataSymbolID  Field[uint16]
	Side                Field[BidOrAsk]
	Price               Field[float64]
	Volume              Field[float64]
	Level               Field[uint16]
	FirstMessageInBatch Field[uint8]
	LastMessageInBatch  Field[uint8]
}

var MarketDepthSnapshotLevel = func() *MarketDepthSnapshotLevelMessage {
	b := newBuilder(TypeMarketDepthSnapshotLevel)
	return &MarketDepthSnapshotLevelMessage{
		Layout:              b.layout,
		MarketDataSymbolID:  b.uint16("MarketDataSymbolID"),
		Side:                enumField[BidOrAsk](b, "Side"),
		Price:               b.float64("Price"),
		Volume:              b.float64("Volume"),
		Level:               b.uint16("Level"),
		FirstMessageInBatch: b.uint8("FirstMessageInBatch"),
		LastMessageInBatch:  b.uint8("LastMessageInBatch"),
	}
}()

type MarketDepthIncrementalUpdateMessage struct {
	*Layout
	MarketDataSymbolID Field[uint16]
	Side               Field[BidOrAsk]
	Price              Field[float64]
	Volume             Field[float64]
	UpdateType         Field[DepthUpdateType]
}

var MarketDepthIncrementalUpdate = func() *MarketDepthIncrementalUpdateMessage {
	b := newBuilder(TypeMarketDepthIncrementalUpdate)
	return &MarketDepthIncrementalUpdateMessage{
		Layout:             b.layout,
		MarketDataSymbolID: b.uint16("MarketDataSymbolID"),
		Side:               enumField[BidOrAsk](b, "Side"),
		Price:              b.float64("Price"),
		Volume:             b.float64("Volume"),
		UpdateType:         enumField[DepthUpdateType](b, "UpdateType"),
	}
}()

type MarketDepthIncrementalUpdateCompactMessage struct {
	*Layout
	MarketDataSymbolID Field[uint16]
	Side               Field[BidOrAsk]
	Price              Field[float32]
	Volume             Field[float32]
	UpdateType         Field[DepthUpdateType]
}

var MarketDepthIncrementalUpdateCompact = func() *MarketDepthIncrementalUpdateCompactMessage {
	b := newBuilder(TypeMarketDepthIncrementalUpdateCompact)
	return &MarketDepthIncrementalUpdateCompactMessage{
		Layout:             b.layout,
		MarketDataSymbolID: b.uint16("MarketDataSymbolID"),
		Side:               enumField[BidOrAsk](b, "Side"),
		Price:              b.float32("Price"),
		Volume:             b.float32("Volume"),
		UpdateType:         enumField[DepthUpdateType](b, "UpdateType"),
	}
}()

type MarketDepthRejectMessage struct {
	*Layout
	MarketDataSymbolID Field[uint16]
	RejectText         TextField
}

var MarketDepthReject = func() *MarketDepthRejectMessage {
	b := newBuilder(TypeMarketDepthReject)
	return &MarketDepthRejectMessage{
		Layout:             b.layout,
		MarketDataSymbolID: b.uint16("MarketDataSymbolID"),
		RejectText:         b.text("RejectText", TextDescriptionLength),
	}
}()

type TradeIncrementalUpdateMessage struct {
	*Layout
	MarketDataSymbolID Field[uint16]
	TradeAtBidOrAsk    Field[BidOrAsk]
	Price              Field[float64]
	TradeVolume        Field[float64]
	TradeDateTimeUnix  Field[float64]
}

var TradeIncrementalUpdate = func() *TradeIncrementalUpdateMessage {
	b := newBuilder(TypeTradeIncrementalUpdate)
	return &TradeIncrementalUpdateMessage{
		Layout:             b.layout,
		MarketDataSymbolID: b.uint16("MarketDataSymbolID"),
		TradeAtBidOrAsk:    enumField[BidOrAsk](b, "TradeAtBidOrAsk"),
		Price:              b.float64("Price"),
		TradeVolume:        b.float64("TradeVolume"),
		TradeDateTimeUnix:  b.float64("TradeDateTimeUnix"),
	}
}()

type TradeIncrementalUpdateCompactMessage struct {
	*Layout
	Price              Field[float32]
	TradeVolume        Field[float32]
	TradeDateTimeUnix  Field[uint32]
	MarketDataSymbolID Field[uint16]
	TradeAtBidOrAsk    Field[BidOrAsk]
}

var TradeIncrementalUpdateCompact = func() *TradeIncrementalUpdateCompactMessage {
	b := newBuilder(TypeTradeIncrementalUpdateCompact)
	return &TradeIncrementalUpdateCompactMessage{
		Layout:             b.layout,
		Price:              b.float32("Price"),
		TradeVolume:        b.float32("TradeVolume"),
		TradeDateTimeUnix:  b.uint32("TradeDateTimeUnix"),
		MarketDataSymbolID: b.uint16("MarketDataSymbolID"),
		TradeAtBidOrAsk:    enumField[BidOrAsk](b, "TradeAtBidOrAsk"),
	}
}()

// QuoteIncrementalUpdateMessage updates the best bid and ask. An unset
// price means that side did not change.
type QuoteIncrementalUpdateMessage struct {
	*Layout
	MarketDataSymbolID Field[uint16]
	BidPrice           Field[float64]
	BidSize            Field[float32]
	AskPrice           Field[float64]
	AskSize            Field[float32]
	QuoteDateTimeUnix  Field[float64]
}

var QuoteIncrementalUpdate = func() *QuoteIncrementalUpdateMessage {
	b := newBuilder(TypeQuoteIncrementalUpdate)
	return &QuoteIncrementalUpdateMessage{
		Layout:             b.layout,
		MarketDataSymbolID: b.uint16("MarketDataSymbolID"),
		BidPrice:           b.float64("BidPrice").Unset(UnsetFloat64),
		BidSize:            b.float32("BidSize"),
		AskPrice:           b.float64("AskPrice").Unset(UnsetFloat64),
		AskSize:            b.float32("AskSize"),
		QuoteDateTimeUnix:  b.float64("QuoteDateTimeUnix"),
	}
}()

type QuoteIncrementalUpdateCompactMessage struct {
	*Layout
	BidPrice           Field[float32]
	BidSize            Field[float32]
	AskPrice           Field[float32]
	AskSize            Field[float32]
	QuoteDateTimeUnix  Field[uint32]
	MarketDataSymbolID Field[uint16]
}

var QuoteIncrementalUpdateCompact = func() *QuoteIncrementalUpdateCompactMessage {
	b := newBuilder(TypeQuoteIncrementalUpdateCompact)
	return &QuoteIncrementalUpdateCompactMessage{
		Layout:             b.layout,
		BidPrice:           b.float32("BidPrice").Unset(UnsetFloat32),
		BidSize:            b.float32("BidSize"),
		AskPrice:           b.float32("AskPrice").Unset(UnsetFloat32),
		AskSize:            b.float32("AskSize"),
		QuoteDateTimeUnix:  b.uint32("QuoteDateTimeUnix"),
		MarketDataSymbolID: b.uint16("MarketDataSymbolID"),
	}
}()

// DailyValueUpdateMessage is the shape shared by the single-value session
// statistic updates.
type DailyValueUpdateMessage struct {
	*Layout
	MarketDataSymbolID Field[uint16]
	Value              Field[float64]
}

func newDailyValueUpdate(t MessageType, name string) *DailyValueUpdateMessage {
	b := newBuilder(t)
	return &DailyValueUpdateMessage{
		Layout:             b.layout,
		MarketDataSymbolID: b.uint16("MarketDataSymbolID"),
		Value:              b.float64(name),
	}
}

var (
	SettlementIncrementalUpdate  = newDailyValueUpdate(TypeSettlementIncrementalUpdate, "SettlementPrice")
	DailyOpenIncrementalUpdate   = newDailyValueUpdate(TypeDailyOpenIncrementalUpdate, "DailyOpen")
	DailyHighIncrementalUpdate   = newDailyValueUpdate(TypeDailyHighIncrementalUpdate, "DailyHigh")
	DailyLowIncrementalUpdate    = newDailyValueUpdate(TypeDailyLowIncrementalUpdate, "DailyLow")
	DailyVolumeIncrementalUpdate = newDailyValueUpdate(TypeDailyVolumeIncrementalUpdate, "DailyVolume")
)

type OpenInterestIncrementalUpdateMessage struct {
	*Layout
	MarketDataSymbolID Field[uint16]
	OpenInterest       Field[uint32]
}

var OpenInterestIncrementalUpdate = func() *OpenInterestIncrementalUpdateMessage {
	b := newBuilder(TypeOpenInterestIncrementalUpdate)
	return &OpenInterestIncrementalUpdateMessage{
		Layout:             b.layout,
		MarketDataSymbolID: b.uint16("MarketDataSymbolID"),
		OpenInterest:       b.uint32("OpenInterest"),
	}
}()
