package dtc

type AccountsRequestMessage struct {
	*Layout
}

var AccountsRequest = &AccountsRequestMessage{newBuilder(TypeAccountsRequest).layout}

type AccountListResponseMessage struct {
	*Layout
	TotalNumberMessages Field[int32]
	MessageNumber       Field[int32]
	TradeAccount        TextField
}

var AccountListResponse = func() *AccountListResponseMessage {
	b := newBuilder(TypeAccountListResponse)
	return &AccountListResponseMessage{
		Layout:              b.layout,
		TotalNumberMessages: b.int32("TotalNumberMessages"),
		MessageNumber:       b.int32("MessageNumber"),
		TradeAccount:        b.text("TradeAccount", TradeAccountLength),
	}
}()

type ExchangeListRequestMessage struct {
	*Layout
	RequestID Field[int32]
}

var ExchangeListRequest = func() *ExchangeListRequestMessage {
	b := newBuilder(TypeExchangeListRequest)
	return &ExchangeListRequestMessage{
		Layout:    b.layout,
		RequestID: b.int32("RequestID"),
	}
}()

type ExchangeListResponseMessage struct {
	*Layout
	RequestID           Field[int32]
	Exchange            TextField
	FinalMessage        Field[uint8]
	ExchangeDescription TextField
}

var ExchangeListResponse = func() *ExchangeListResponseMessage {
	b := newBuilder(TypeExchangeListResponse)
	return &ExchangeListResponseMessage{
		Layout:              b.layout,
		RequestID:           b.int32("RequestID"),
		Exchange:            b.text("Exchange", ExchangeLength),
		FinalMessage:        b.uint8("FinalMessage"),
		ExchangeDescription: b.text("ExchangeDescription", ExchangeDescriptionLength),
	}
}()

// SymbolsForExchangeRequestMessage is shared by the symbol and underlying
// symbol listing requests.
type SymbolsForExchangeRequestMessage struct {
	*Layout
	RequestID    Field[int32]
	Exchange     TextField
	SecurityType Field[SecurityType]
}

func newSymbolsForExchangeRequest(t MessageType) *SymbolsForExchangeRequestMessage {
	b := newBuilder(t)
	return &SymbolsForExchangeRequestMessage{
		Layout:       b.layout,
		RequestID:    b.int32("RequestID"),
		Exchange:     b.text("Exchange", ExchangeLength),
		SecurityType: enumField[SecurityType](b, "SecurityType"),
	}
}

var (
	SymbolsForExchangeRequest           = newSymbolsForExchangeRequest(TypeSymbolsForExchangeRequest)
	UnderlyingSymbolsForExchangeRequest = newSymbolsForExchangeRequest(TypeUnderlyingSymbolsForExchangeRequest)
)

type SymbolsForUnderlyingRequestMessage struct {
	*Layout
	RequestID        Field[int32]
	UnderlyingSymbol TextField
	Exchange         TextField
	SecurityType     Field[SecurityType]
}

var SymbolsForUnderlyingRequest = func() *SymbolsForUnderlyingRequestMessage {
	b := newBuilder(TypeSymbolsForUnderlyingRequest)
	return &SymbolsForUnderlyingRequestMessage{
		Layout:           b.layout,
		RequestID:        b.int32("RequestID"),
		UnderlyingSymbol: b.text("UnderlyingSymbol", UnderlyingSymbolLength),
		Exchange:         b.text("Exchange", ExchangeLength),
		SecurityType:     enumField[SecurityType](b, "SecurityType"),
	}
}()

type SecurityDefinitionForSymbolRequestMessage struct {
	*Layout
	RequestID    Field[int32]
	Symbol       TextField
	Exchange     TextField
	SecurityType Field[SecurityType]
}

var SecurityDefinitionForSymbolRequest = func() *SecurityDefinitionForSymbolRequestMessage {
	b := newBuilder(TypeSecurityDefinitionForSymbolRequest)
	return &SecurityDefinitionForSymbolRequestMessage{
		Layout:       b.layout,
		RequestID:    b.int32("RequestID"),
		Symbol:       b.text("Symbol", SymbolLength),
		Exchange:     b.text("Exchange", ExchangeLength),
		SecurityType: enumField[SecurityType](b, "SecurityType"),
	}
}()

type SecurityDefinitionResponseMessage struct {
	*Layout
	RequestID          Field[int32]
	Symbol             TextField
	Exchange           TextField
	SecurityType       Field[SecurityType]
	SymbolDescription  TextField
	TickSize           Field[float32]
	PriceDisplayFormat Field[DisplayFormat]
	TickCurrencyValue  Field[float32]
	FinalMessage       Field[uint8]
}

var SecurityDefinitionResponse = func() *SecurityDefinitionResponseMessage {
	b := newBuilder(TypeSecurityDefinitionResponse)
	return &SecurityDefinitionResponseMessage{
		Layout:             b.layout,
		RequestID:          b.int32("RequestID"),
		Symbol:             b.text("Symbol", SymbolLength),
		Exchange:           b.text("Exchange", ExchangeLength),
		SecurityType:       enumField[SecurityType](b, "SecurityType"),
		SymbolDescription:  b.text("SymbolDescription", SymbolDescriptionLength),
		TickSize:           b.float32("TickSize"),
		PriceDisplayFormat: enumField[DisplayFormat](b, "PriceDisplayFormat"),
		TickCurrencyValue:  b.float32("TickCurrencyValue"),
		FinalMessage:       b.uint8("FinalMessage"),
	}
}()

type AccountBalanceUpdateMessage struct {
	*Layout
	CurrentCashBalance                     Field[float64]
	CurrentBalanceAvailableForNewPositions Field[float64]
	AccountCurrency                        TextField
	TradeAccount                           TextField
}

var AccountBalanceUpdate = func() *AccountBalanceUpdateMessage {
	b := newBuilder(TypeAccountBalanceUpdate)
	return &AccountBalanceUpdateMessage{
		Layout:                                 b.layout,
		CurrentCashBalance:                     b.float64("CurrentCashBalance"),
		CurrentBalanceAvailableForNewPositions: b.float64("CurrentBalanceAvailableForNewPositions"),
		AccountCurrency:                        b.text("AccountCurrency", 8),
		TradeAccount:                           b.text("TradeAccount", TradeAccountLength),
	}
}()

type UserMessageMessage struct {
	*Layout
	UserMessage  TextField
	PopupMessage Field[uint8]
}

var UserMessage = func() *UserMessageMessage {
	b := newBuilder(TypeUserMessage)
	return &UserMessageMessage{
		Layout:       b.layout,
		UserMessage:  b.text("UserMessage", TextMessageLength),
		PopupMessage: b.uint8("PopupMessage").Default(1),
	}
}()

type GeneralLogMessageMessage struct {
	*Layout
	MessageText TextField
}

var GeneralLogMessage = func() *GeneralLogMessageMessage {
	b := newBuilder(TypeGeneralLogMessage)
	return &GeneralLogMessageMessage{
		Layout:      b.layout,
		MessageText: b.text("MessageText", 128),
	}
}()
