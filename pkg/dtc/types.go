package dtc

import (
	"fmt"
	"strconv"
	"strings"
)

// CurrentVersion is the protocol version implemented by this package.
const CurrentVersion = 4

// Text field capacities shared by several messages.
const (
	SymbolLength              = 64
	ExchangeLength            = 16
	UnderlyingSymbolLength    = 32
	SymbolDescriptionLength   = 48
	ExchangeDescriptionLength = 48
	OrderIDLength             = 32
	TradeAccountLength        = 32
	TextDescriptionLength     = 96
	TextMessageLength         = 256
)

// MessageType is the type tag carried in every message header.
type MessageType uint16

// Authentication and connection.
const (
	TypeLogonRequest                    MessageType = 1
	TypeLogonResponse                   MessageType = 2
	TypeHeartbeat                       MessageType = 3
	TypeDisconnectFromServerNoReconnect MessageType = 4
	TypeLogoffRequest                   MessageType = 5
)

// Market data.
const (
	TypeMarketDataFeedStatus                MessageType = 100
	TypeMarketDataRequest                   MessageType = 101
	TypeMarketDepthRequest                  MessageType = 102
	TypeMarketDataReject                    MessageType = 103
	TypeMarketDataSnapshot                  MessageType = 104
	TypeMarketDepthFullUpdate20             MessageType = 105
	TypeMarketDepthIncrementalUpdate        MessageType = 106
	TypeTradeIncrementalUpdate              MessageType = 107
	TypeQuoteIncrementalUpdate              MessageType = 108
	TypeFundamentalDataResponse             MessageType = 110
	TypeTradeIncrementalUpdateCompact       MessageType = 112
	TypeDailyVolumeIncrementalUpdate        MessageType = 113
	TypeDailyHighIncrementalUpdate          MessageType = 114
	TypeDailyLowIncrementalUpdate           MessageType = 115
	TypeMarketDataFeedSymbolStatus          MessageType = 116
	TypeQuoteIncrementalUpdateCompact       MessageType = 117
	TypeMarketDepthIncrementalUpdateCompact MessageType = 118
	TypeSettlementIncrementalUpdate         MessageType = 119
	TypeDailyOpenIncrementalUpdate          MessageType = 120
	TypeMarketDepthReject                   MessageType = 121
	TypeMarketDepthSnapshotLevel            MessageType = 122
	TypeMarketDepthFullUpdate10             MessageType = 123
	TypeOpenInterestIncrementalUpdate       MessageType = 124
)

// Order entry.
const (
	TypeSubmitNewSingleOrder MessageType = 200
	TypeSubmitNewOCOOrder    MessageType = 201
	TypeCancelReplaceOrder   MessageType = 202
	TypeCancelOrder          MessageType = 203
)

// Trading reports.
const (
	TypeOpenOrdersRequest             MessageType = 300
	TypeOrderUpdateReport             MessageType = 301
	TypeOpenOrdersRequestReject       MessageType = 302
	TypeHistoricalOrderFillsRequest   MessageType = 303
	TypeHistoricalOrderFillReport     MessageType = 304
	TypeCurrentPositionsRequest       MessageType = 305
	TypePositionReport                MessageType = 306
	TypeCurrentPositionsRequestReject MessageType = 307
)

// Accounts, symbol discovery, balances and logging.
const (
	TypeAccountsRequest                     MessageType = 400
	TypeAccountListResponse                 MessageType = 401
	TypeExchangeListRequest                 MessageType = 500
	TypeExchangeListResponse                MessageType = 501
	TypeSymbolsForExchangeRequest           MessageType = 502
	TypeUnderlyingSymbolsForExchangeRequest MessageType = 503
	TypeSymbolsForUnderlyingRequest         MessageType = 504
	TypeSecurityDefinitionForSymbolRequest  MessageType = 506
	TypeSecurityDefinitionResponse          MessageType = 507
	// TypeSymbolSearchByDescription is reserved; no layout is defined for
	// it and lookups report ErrUnknownType.
	TypeSymbolSearchByDescription MessageType = 508
	TypeAccountBalanceUpdate      MessageType = 600
	TypeUserMessage               MessageType = 700
	TypeGeneralLogMessage         MessageType = 701
)

// Historical price data.
const (
	TypeHistoricalPriceDataRequest            MessageType = 800
	TypeHistoricalPriceDataHeaderResponse     MessageType = 801
	TypeHistoricalPriceDataReject             MessageType = 802
	TypeHistoricalPriceDataRecordResponse     MessageType = 803
	TypeHistoricalPriceDataTickRecordResponse MessageType = 804
)

var messageTypeNames = map[MessageType]string{
	TypeLogonRequest:                          "LOGON_REQUEST",
	TypeLogonResponse:                         "LOGON_RESPONSE",
	TypeHeartbeat:                             "HEARTBEAT",
	TypeDisconnectFromServerNoReconnect:       "DISCONNECT_FROM_SERVER_NO_RECONNECT",
	TypeLogoffRequest:                         "LOGOFF_REQUEST",
	TypeMarketDataFeedStatus:                  "MARKET_DATA_FEED_STATUS",
	TypeMarketDataRequest:                     "MARKET_DATA_REQUEST",
	TypeMarketDepthRequest:                    "MARKET_DEPTH_REQUEST",
	TypeMarketDataReject:                      "MARKET_DATA_REJECT",
	TypeMarketDataSnapshot:                    "MARKET_DATA_SNAPSHOT",
	TypeMarketDepthFullUpdate20:               "MARKET_DEPTH_FULL_UPDATE_20",
	TypeMarketDepthIncrementalUpdate:          "MARKET_DEPTH_INCREMENTAL_UPDATE",
	TypeTradeIncrementalUpdate:                "TRADE_INCREMENTAL_UPDATE",
	TypeQuoteIncrementalUpdate:                "QUOTE_INCREMENTAL_UPDATE",
	TypeFundamentalDataResponse:               "FUNDAMENTAL_DATA_RESPONSE",
	TypeTradeIncrementalUpdateCompact:         "TRADE_INCREMENTAL_UPDATE_COMPACT",
	TypeDailyVolumeIncrementalUpdate:          "DAILY_VOLUME_INCREMENTAL_UPDATE",
	TypeDailyHighIncrementalUpdate:            "DAILY_HIGH_INCREMENTAL_UPDATE",
	TypeDailyLowIncrementalUpdate:             "DAILY_LOW_INCREMENTAL_UPDATE",
	TypeMarketDataFeedSymbolStatus:            "MARKET_DATA_FEED_SYMBOL_STATUS",
	TypeQuoteIncrementalUpdateCompact:         "QUOTE_INCREMENTAL_UPDATE_COMPACT",
	TypeMarketDepthIncrementalUpdateCompact:   "MARKET_DEPTH_INCREMENTAL_UPDATE_COMPACT",
	TypeSettlementIncrementalUpdate:           "SETTLEMENT_INCREMENTAL_UPDATE",
	TypeDailyOpenIncrementalUpdate:            "DAILY_OPEN_INCREMENTAL_UPDATE",
	TypeMarketDepthReject:                     "MARKET_DEPTH_REJECT",
	TypeMarketDepthSnapshotLevel:              "MARKET_DEPTH_SNAPSHOT_LEVEL",
	TypeMarketDepthFullUpdate10:               "MARKET_DEPTH_FULL_UPDATE_10",
	TypeOpenInterestIncrementalUpdate:         "OPEN_INTEREST_INCREMENTAL_UPDATE",
	TypeSubmitNewSingleOrder:                  "SUBMIT_NEW_SINGLE_ORDER",
	TypeSubmitNewOCOOrder:                     "SUBMIT_NEW_OCO_ORDER",
	TypeCancelReplaceOrder:                    "CANCEL_REPLACE_ORDER",
	TypeCancelOrder:                           "CANCEL_ORDER",
	TypeOpenOrdersRequest:                     "OPEN_ORDERS_REQUEST",
	TypeOrderUpdateReport:                     "ORDER_UPDATE_REPORT",
	TypeOpenOrdersRequestReject:               "OPEN_ORDERS_REQUEST_REJECT",
	TypeHistoricalOrderFillsRequest:           "HISTORICAL_ORDER_FILLS_REQUEST",
	TypeHistoricalOrderFillReport:             "HISTORICAL_ORDER_FILL_REPORT",
	TypeCurrentPositionsRequest:               "CURRENT_POSITIONS_REQUEST",
	TypePositionReport:                        "POSITION_REPORT",
	TypeCurrentPositionsRequestReject:         "CURRENT_POSITIONS_REQUEST_REJECT",
	TypeAccountsRequest:                       "ACCOUNTS_REQUEST",
	TypeAccountListResponse:                   "ACCOUNT_LIST_RESPONSE",
	TypeExchangeListRequest:                   "EXCHANGE_LIST_REQUEST",
	TypeExchangeListResponse:                  "EXCHANGE_LIST_RESPONSE",
	TypeSymbolsForExchangeRequest:             "SYMBOLS_FOR_EXCHANGE_REQUEST",
	TypeUnderlyingSymbolsForExchangeRequest:   "UNDERLYING_SYMBOLS_FOR_EXCHANGE_REQUEST",
	TypeSymbolsForUnderlyingRequest:           "SYMBOLS_FOR_UNDERLYING_REQUEST",
	TypeSecurityDefinitionForSymbolRequest:    "SECURITY_DEFINITION_FOR_SYMBOL_REQUEST",
	TypeSecurityDefinitionResponse:            "SECURITY_DEFINITION_RESPONSE",
	TypeSymbolSearchByDescription:             "SYMBOL_SEARCH_BY_DESCRIPTION",
	TypeAccountBalanceUpdate:                  "ACCOUNT_BALANCE_UPDATE",
	TypeUserMessage:                           "USER_MESSAGE",
	TypeGeneralLogMessage:                     "GENERAL_LOG_MESSAGE",
	TypeHistoricalPriceDataRequest:            "HISTORICAL_PRICE_DATA_REQUEST",
	TypeHistoricalPriceDataHeaderResponse:     "HISTORICAL_PRICE_DATA_HEADER_RESPONSE",
	TypeHistoricalPriceDataReject:             "HISTORICAL_PRICE_DATA_REJECT",
	TypeHistoricalPriceDataRecordResponse:     "HISTORICAL_PRICE_DATA_RECORD_RESPONSE",
	TypeHistoricalPriceDataTickRecordResponse: "HISTORICAL_PRICE_DATA_TICK_RECORD_RESPONSE",
}

// String returns the protocol name of the type, or its number if the tag is
// not known.
func (t MessageType) String() string {
	if name, ok := messageTypeNames[t]; ok {
		return name
	}
	return strconv.Itoa(int(t))
}

// ParseMessageType accepts a protocol name (case-insensitive) or a decimal tag.
func ParseMessageType(s string) (MessageType, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 10, 16); err == nil {
		return MessageType(n), nil
	}
	upper := strings.ToUpper(s)
	for t, name := range messageTypeNames {
		if name == upper {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Direction selects which side of a connection originated a message.
type Direction uint8

const (
	// FromClient selects messages sent by a client to a server.
	FromClient Direction = iota + 1
	// FromServer selects messages sent by a server to a client.
	FromServer
)

func (d Direction) String() string {
	switch d {
	case FromClient:
		return "client"
	case FromServer:
		return "server"
	default:
		return "direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// ParseDirection parses "client" or "server".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "client", "c", "request":
		return FromClient, nil
	case "server", "s", "response":
		return FromServer, nil
	default:
		return 0, fmt.Errorf("invalid direction %q (expected client or server)", s)
	}
}
