package dtc

type HistoricalPriceDataRequestMessage struct {
	*Layout
	RequestIdentifier         Field[int32]
	Symbol                    TextField
	Exchange                  TextField
	DataInterval              Field[HistoricalDataInterval]
	StartDateTime             Field[int64]
	EndDateTime               Field[int64]
	MaximumDaysToReturn       Field[uint32]
	UseZLibCompression        Field[uint8]
	DividendAdjustedStockData Field[uint8]
	DelayedData               Field[uint8]
}

var HistoricalPriceDataRequest = func() *HistoricalPriceDataRequestMessage {
	b := newBuilder(TypeHistoricalPriceDataRequest)
	return &HistoricalPriceDataRequestMessage{
		Layout:                    b.layout,
		RequestIdentifier:         b.int32("RequestIdentifier"),
		Symbol:                    b.text("Symbol", SymbolLength),
		Exchange:                  b.text("Exchange", ExchangeLength),
		DataInterval:              enumField[HistoricalDataInterval](b, "DataInterval"),
		StartDateTime:             b.int64("StartDateTime"),
		EndDateTime:               b.int64("EndDateTime"),
		MaximumDaysToReturn:       b.uint32("MaximumDaysToReturn"),
		UseZLibCompression:        b.uint8("UseZLibCompression"),
		DividendAdjustedStockData: b.uint8("DividendAdjustedStockData"),
		DelayedData:               b.uint8("DelayedData"),
	}
}()

// HistoricalPriceDataHeaderResponseMessage precedes the records of a
// historical data response.
type HistoricalPriceDataHeaderResponseMessage struct {
	*Layout
	RequestIdentifier         Field[int32]
	DataInterval              Field[HistoricalDataInterval]
	RecordsUseZLibCompression Field[uint8]
	NoRecordsToReturn         Field[uint8]
}

var HistoricalPriceDataHeaderResponse = func() *HistoricalPriceDataHeaderResponseMessage {
	b := newBuilder(TypeHistoricalPriceDataHeaderResponse)
	return &HistoricalPriceDataHeaderResponseMessage{
		Layout:                    b.layout,
		RequestIdentifier:         b.int32("RequestIdentifier"),
		DataInterval:              enumField[HistoricalDataInterval](b, "DataInterval"),
		RecordsUseZLibCompression: b.uint8("RecordsUseZLibCompression"),
		NoRecordsToReturn:         b.uint8("NoRecordsToReturn"),
	}
}()

var HistoricalPriceDataReject = newRequestReject(TypeHistoricalPriceDataReject, "RequestIdentifier")

// HistoricalPriceDataRecordResponseMessage is one bar.
type HistoricalPriceDataRecordResponseMessage struct {
	*Layout
	RequestIdentifier Field[int32]
	StartingDateTime  Field[int64]
	Open              Field[float64]
	High              Field[float64]
	Low               Field[float64]
	Last              Field[float64]
	Volume            Field[float64]
	// OpenInterest and NumberTrades share storage.
	OpenInterest Field[uint32]
	NumberTrades Field[uint32]
	BidVolume    Field[float64]
	AskVolume    Field[float64]
	FinalRecord  Field[uint8]
}

var HistoricalPriceDataRecordResponse = func() *HistoricalPriceDataRecordResponseMessage {
	b := newBuilder(TypeHistoricalPriceDataRecordResponse)
	m := &HistoricalPriceDataRecordResponseMessage{
		Layout:            b.layout,
		RequestIdentifier: b.int32("RequestIdentifier"),
		StartingDateTime:  b.int64("StartingDateTime"),
		Open:              b.float64("Open"),
		High:              b.float64("High"),
		Low:               b.float64("Low"),
		Last:              b.float64("Last"),
		Volume:            b.float64("Volume"),
		OpenInterest:      b.uint32("OpenInterest"),
		BidVolume:         b.float64("BidVolume"),
		AskVolume:         b.float64("AskVolume"),
		FinalRecord:       b.uint8("FinalRecord"),
	}
	m.NumberTrades = m.OpenInterest
	return m
}()

type HistoricalPriceDataTickRecordResponseMessage struct {
	*Layout
	RequestIdentifier             Field[int32]
	TradeDateTimeWithMilliseconds Field[float64]
	BidOrAsk                      Field[BidOrAsk]
	TradePrice                    Field[float64]
	TradeVolume                   Field[float64]
	FinalRecord                   Field[uint8]
}

var HistoricalPriceDataTickRecordResponse = func() *HistoricalPriceDataTickRecordResponseMessage {
	b := newBuilder(TypeHistoricalPriceDataTickRecordResponse)
	return &HistoricalPriceDataTickRecordResponseMessage{
		Layout:                        b.layout,
		RequestIdentifier:             b.int32("RequestIdentifier"),
		TradeDateTimeWithMilliseconds: b.float64("TradeDateTimeWithMilliseconds"),
		BidOrAsk:                      enumField[BidOrAsk](b, "BidOrAsk"),
		TradePrice:                    b.float64("TradePrice"),
		TradeVolume:                   b.float64("TradeVolume"),
		FinalRecord:                   b.uint8("FinalRecord"),
	}
}()
