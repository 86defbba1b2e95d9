package dtc

// LogonRequestMessage is the first message a client sends.
type LogonRequestMessage struct {
	*Layout
	ProtocolVersion            Field[int32]
	Username                   TextField
	Password                   TextField
	GeneralTextData            TextField
	Integer1                   Field[int32]
	Integer2                   Field[int32]
	HeartbeatIntervalInSeconds Field[int32]
	TradeMode                  Field[TradeMode]
	TradeAccount               TextField
	HardwareIdentifier         TextField
	ClientName                 TextField
}

var LogonRequest = func() *LogonRequestMessage {
	b := newBuilder(TypeLogonRequest)
	return &LogonRequestMessage{
		Layout:                     b.layout,
		ProtocolVersion:            b.int32("ProtocolVersion").Default(CurrentVersion),
		Username:                   b.text("Username", 32),
		Password:                   b.text("Password", 32),
		GeneralTextData:            b.text("GeneralTextData", 64),
		Integer1:                   b.int32("Integer_1"),
		Integer2:                   b.int32("Integer_2"),
		HeartbeatIntervalInSeconds: b.int32("HeartbeatIntervalInSeconds"),
		TradeMode:                  enumField[TradeMode](b, "TradeMode"),
		TradeAccount:               b.text("TradeAccount", TradeAccountLength),
		HardwareIdentifier:         b.text("HardwareIdentifier", 64),
		ClientName:                 b.text("ClientName", 32),
	}
}()

// LogonResponseMessage answers a logon request and advertises the server's
// capabilities.
type LogonResponseMessage struct {
	*Layout
	ProtocolVersion                            Field[int32]
	Result                                     Field[LogonStatus]
	ResultText                                 TextField
	ReconnectAddress                           TextField
	Integer1                                   Field[int32]
	ServerVersion                              TextField
	ServerName                                 TextField
	ServiceProviderName                        TextField
	MarketDepthUpdatesBestBidAndAsk            Field[uint8]
	TradingIsSupported                         Field[uint8]
	OCOOrdersSupported                         Field[uint8]
	OrderCancelReplaceSupported                Field[uint8]
	SymbolExchangeDelimiter                    TextField
	SecurityDefinitionsSupported               Field[uint8]
	HistoricalPriceDataSupported               Field[uint8]
	ResubscribeWhenMarketDataFeedRestored      Field[uint8]
	MarketDepthIsSupported                     Field[uint8]
	OneHistoricalPriceDataRequestPerConnection Field[uint8]
}

var LogonResponse = func() *LogonResponseMessage {
	b := newBuilder(TypeLogonResponse)
	return &LogonResponseMessage{
		Layout:                                     b.layout,
		ProtocolVersion:                            b.int32("ProtocolVersion").Default(CurrentVersion),
		Result:                                     enumField[LogonStatus](b, "Result"),
		ResultText:                                 b.text("ResultText", TextDescriptionLength),
		ReconnectAddress:                           b.text("ReconnectAddress", 64),
		Integer1:                                   b.int32("Integer_1"),
		ServerVersion:                              b.text("ServerVersion", 12),
		ServerName:                                 b.text("ServerName", 24),
		ServiceProviderName:                        b.text("ServiceProviderName", 24),
		MarketDepthUpdatesBestBidAndAsk:            b.uint8("MarketDepthUpdatesBestBidAndAsk"),
		TradingIsSupported:                         b.uint8("TradingIsSupported"),
		OCOOrdersSupported:                         b.uint8("OCOOrdersSupported"),
		OrderCancelReplaceSupported:                b.uint8("OrderCancelReplaceSupported").Default(1),
		SymbolExchangeDelimiter:                    b.text("SymbolExchangeDelimiter", 4),
		SecurityDefinitionsSupported:               b.uint8("SecurityDefinitionsSupported"),
		HistoricalPriceDataSupported:               b.uint8("HistoricalPriceDataSupported"),
		ResubscribeWhenMarketDataFeedRestored:      b.uint8("ResubscribeWhenMarketDataFeedRestored"),
		MarketDepthIsSupported:                     b.uint8("MarketDepthIsSupported").Default(1),
		OneHistoricalPriceDataRequestPerConnection: b.uint8("OneHistoricalPriceDataRequestPerConnection"),
	}
}()

type LogoffRequestMessage struct {
	*Layout
	Reason TextField
}

var LogoffRequest = func() *LogoffRequestMessage {
	b := newBuilder(TypeLogoffRequest)
	return &LogoffRequestMessage{
		Layout: b.layout,
		Reason: b.text("Reason", TextDescriptionLength),
	}
}()

// HeartbeatMessage is sent by both sides at the negotiated interval.
type HeartbeatMessage struct {
	*Layout
	DroppedMessages Field[uint32]
	// CurrentDateTime is in Unix seconds.
	CurrentDateTime Field[int64]
}

var Heartbeat = func() *HeartbeatMessage {
	b := newBuilder(TypeHeartbeat)
	return &HeartbeatMessage{
		Layout:          b.layout,
		DroppedMessages: b.uint32("DroppedMessages"),
		CurrentDateTime: b.int64("CurrentDateTime"),
	}
}()

type DisconnectFromServerMessage struct {
	*Layout
	DisconnectReason TextField
}

var DisconnectFromServer = func() *DisconnectFromServerMessage {
	b := newBuilder(TypeDisconnectFromServerNoReconnect)
	return &DisconnectFromServerMessage{
		Layout:           b.layout,
		DisconnectReason: b.text("DisconnectReason", TextDescriptionLength),
	}
}()
