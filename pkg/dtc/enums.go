package dtc

import "strconv"

// Enumerations are stored on the wire as 32-bit signed integers.

type LogonStatus int32

const (
	LogonSuccess             LogonStatus = 1
	LogonError               LogonStatus = 2
	LogonErrorNoReconnect    LogonStatus = 3
	LogonReconnectNewAddress LogonStatus = 4
)

var logonStatusNames = map[LogonStatus]string{
	LogonSuccess:             "SUCCESS",
	LogonError:               "ERROR",
	LogonErrorNoReconnect:    "ERROR_NO_RECONNECT",
	LogonReconnectNewAddress: "RECONNECT_NEW_ADDRESS",
}

func (v LogonStatus) String() string { return enumName(logonStatusNames, v) }

type TradeMode int32

const (
	TradeModeDemo      TradeMode = 1
	TradeModeSimulated TradeMode = 2
	TradeModeLive      TradeMode = 3
)

var tradeModeNames = map[TradeMode]string{
	TradeModeDemo:      "DEMO",
	TradeModeSimulated: "SIMULATED",
	TradeModeLive:      "LIVE",
}

func (v TradeMode) String() string { return enumName(tradeModeNames, v) }

type RequestAction int32

const (
	Subscribe   RequestAction = 1
	Unsubscribe RequestAction = 2
	Snapshot    RequestAction = 3
)

var requestActionNames = map[RequestAction]string{
	Subscribe:   "SUBSCRIBE",
	Unsubscribe: "UNSUBSCRIBE",
	Snapshot:    "SNAPSHOT",
}

func (v RequestAction) String() string { return enumName(requestActionNames, v) }

type OrderStatus int32

const (
	OrderStatusUnspecified          OrderStatus = 0
	OrderStatusOrderSent            OrderStatus = 1
	OrderStatusPendingOpen          OrderStatus = 2
	OrderStatusPendingChild         OrderStatus = 3
	OrderStatusOpen                 OrderStatus = 4
	OrderStatusPendingCancelReplace OrderStatus = 5
	OrderStatusPendingCancel        OrderStatus = 6
	OrderStatusFilled               OrderStatus = 7
	OrderStatusCanceled             OrderStatus = 8
	OrderStatusRejected             OrderStatus = 9
)

var orderStatusNames = map[OrderStatus]string{
	OrderStatusUnspecified:          "UNSPECIFIED",
	OrderStatusOrderSent:            "ORDER_SENT",
	OrderStatusPendingOpen:          "PENDING_OPEN",
	OrderStatusPendingChild:         "PENDING_CHILD",
	OrderStatusOpen:                 "OPEN",
	OrderStatusPendingCancelReplace: "PENDING_CANCEL_REPLACE",
	OrderStatusPendingCancel:        "PENDING_CANCEL",
	OrderStatusFilled:               "FILLED",
	OrderStatusCanceled:             "CANCELED",
	OrderStatusRejected:             "REJECTED",
}

func (v OrderStatus) String() string { return enumName(orderStatusNames, v) }

type ExecutionType int32

const (
	ExecutionUnset                    ExecutionType = 0
	ExecutionOpenOrdersRequest        ExecutionType = 1
	ExecutionNewOrderAccepted         ExecutionType = 2
	ExecutionOrderUpdate              ExecutionType = 3
	ExecutionFilled                   ExecutionType = 4
	ExecutionPartialFill              ExecutionType = 5
	ExecutionCanceled                 ExecutionType = 6
	ExecutionCancelReplaceComplete    ExecutionType = 7
	ExecutionNewOrderReject           ExecutionType = 8
	ExecutionOrderCancelReject        ExecutionType = 9
	ExecutionOrderCancelReplaceReject ExecutionType = 10
)

var executionTypeNames = map[ExecutionType]string{
	ExecutionUnset:                    "UNSET",
	ExecutionOpenOrdersRequest:        "OPEN_ORDERS_REQUEST",
	ExecutionNewOrderAccepted:         "NEW_ORDER_ACCEPTED",
	ExecutionOrderUpdate:              "ORDER_UPDATE",
	ExecutionFilled:                   "FILLED",
	ExecutionPartialFill:              "PARTIAL_FILL",
	ExecutionCanceled:                 "CANCELED",
	ExecutionCancelReplaceComplete:    "CANCEL_REPLACE_COMPLETE",
	ExecutionNewOrderReject:           "NEW_ORDER_REJECT",
	ExecutionOrderCancelReject:        "ORDER_CANCEL_REJECT",
	ExecutionOrderCancelReplaceReject: "ORDER_CANCEL_REPLACE_REJECT",
}

func (v ExecutionType) String() string { return enumName(executionTypeNames, v) }

type BidOrAsk int32

const (
	BidAskUnset BidOrAsk = 0
	AtBid       BidOrAsk = 1
	AtAsk       BidOrAsk = 2
)

var bidOrAskNames = map[BidOrAsk]string{
	BidAskUnset: "UNSET",
	AtBid:       "BID",
	AtAsk:       "ASK",
}

func (v BidOrAsk) String() string { return enumName(bidOrAskNames, v) }

// DepthUpdateType tells a depth consumer whether to insert/update or delete
// the price level.
type DepthUpdateType int32

const (
	DepthUnset        DepthUpdateType = 0
	DepthInsertUpdate DepthUpdateType = 1
	DepthDelete       DepthUpdateType = 2
)

var depthUpdateTypeNames = map[DepthUpdateType]string{
	DepthUnset:        "UNSET",
	DepthInsertUpdate: "INSERT_UPDATE",
	DepthDelete:       "DELETE",
}

func (v DepthUpdateType) String() string { return enumName(depthUpdateTypeNames, v) }

type OrderType int32

const (
	OrderTypeUnset           OrderType = 0
	OrderTypeMarket          OrderType = 1
	OrderTypeLimit           OrderType = 2
	OrderTypeStop            OrderType = 3
	OrderTypeStopLimit       OrderType = 4
	OrderTypeMarketIfTouched OrderType = 5
)

var orderTypeNames = map[OrderType]string{
	OrderTypeUnset:           "UNSET",
	OrderTypeMarket:          "MARKET",
	OrderTypeLimit:           "LIMIT",
	OrderTypeStop:            "STOP",
	OrderTypeStopLimit:       "STOP_LIMIT",
	OrderTypeMarketIfTouched: "MARKET_IF_TOUCHED",
}

func (v OrderType) String() string { return enumName(orderTypeNames, v) }

type TimeInForce int32

const (
	TimeInForceUnset             TimeInForce = 0
	TimeInForceDay               TimeInForce = 1
	TimeInForceGoodTillCanceled  TimeInForce = 2
	TimeInForceGoodTillDateTime  TimeInForce = 3
	TimeInForceImmediateOrCancel TimeInForce = 4
	TimeInForceAllOrNone         TimeInForce = 5
	TimeInForceFillOrKill        TimeInForce = 6
)

var timeInForceNames = map[TimeInForce]string{
	TimeInForceUnset:             "UNSET",
	TimeInForceDay:               "DAY",
	TimeInForceGoodTillCanceled:  "GOOD_TILL_CANCELED",
	TimeInForceGoodTillDateTime:  "GOOD_TILL_DATE_TIME",
	TimeInForceImmediateOrCancel: "IMMEDIATE_OR_CANCEL",
	TimeInForceAllOrNone:         "ALL_OR_NONE",
	TimeInForceFillOrKill:        "FILL_OR_KILL",
}

func (v TimeInForce) String() string { return enumName(timeInForceNames, v) }

type BuySell int32

const (
	BuySellUnset BuySell = 0
	Buy          BuySell = 1
	Sell         BuySell = 2
)

var buySellNames = map[BuySell]string{
	BuySellUnset: "UNSET",
	Buy:          "BUY",
	Sell:         "SELL",
}

func (v BuySell) String() string { return enumName(buySellNames, v) }

type OpenClose int32

const (
	TradeUnset OpenClose = 0
	TradeOpen  OpenClose = 1
	TradeClose OpenClose = 2
)

var openCloseNames = map[OpenClose]string{
	TradeUnset: "UNSET",
	TradeOpen:  "OPEN",
	TradeClose: "CLOSE",
}

func (v OpenClose) String() string { return enumName(openCloseNames, v) }

type FeedStatus int32

const (
	FeedLost     FeedStatus = 1
	FeedRestored FeedStatus = 2
)

var feedStatusNames = map[FeedStatus]string{
	FeedLost:     "LOST",
	FeedRestored: "RESTORED",
}

func (v FeedStatus) String() string { return enumName(feedStatusNames, v) }

// DisplayFormat encodes either a number of decimal places or a fractional
// denominator (100 + denominator).
type DisplayFormat int32

const (
	DisplayFormatUnset                 DisplayFormat = -1
	DisplayFormatDecimal0              DisplayFormat = 0
	DisplayFormatDecimal1              DisplayFormat = 1
	DisplayFormatDecimal2              DisplayFormat = 2
	DisplayFormatDecimal3              DisplayFormat = 3
	DisplayFormatDecimal4              DisplayFormat = 4
	DisplayFormatDecimal5              DisplayFormat = 5
	DisplayFormatDecimal6              DisplayFormat = 6
	DisplayFormatDecimal7              DisplayFormat = 7
	DisplayFormatDecimal8              DisplayFormat = 8
	DisplayFormatDecimal9              DisplayFormat = 9
	DisplayFormatDenominator256        DisplayFormat = 356
	DisplayFormatDenominator128        DisplayFormat = 228
	DisplayFormatDenominator64         DisplayFormat = 164
	DisplayFormatDenominator32Quarters DisplayFormat = 136
	DisplayFormatDenominator32Halves   DisplayFormat = 134
	DisplayFormatDenominator32         DisplayFormat = 132
	DisplayFormatDenominator16         DisplayFormat = 116
	DisplayFormatDenominator8          DisplayFormat = 108
	DisplayFormatDenominator4          DisplayFormat = 104
	DisplayFormatDenominator2          DisplayFormat = 102
)

func (v DisplayFormat) String() string {
	switch {
	case v == DisplayFormatUnset:
		return "UNSET"
	case v >= DisplayFormatDecimal0 && v <= DisplayFormatDecimal9:
		return "DECIMAL_" + strconv.Itoa(int(v))
	case v == DisplayFormatDenominator32Quarters:
		return "DENOMINATOR_32_QUARTERS"
	case v == DisplayFormatDenominator32Halves:
		return "DENOMINATOR_32_HALVES"
	case v > 100:
		return "DENOMINATOR_" + strconv.Itoa(int(v)-100)
	default:
		return strconv.Itoa(int(v))
	}
}

type SecurityType int32

const (
	SecurityTypeUnset           SecurityType = 0
	SecurityTypeFuture          SecurityType = 1
	SecurityTypeStock           SecurityType = 2
	SecurityTypeForex           SecurityType = 3
	SecurityTypeIndex           SecurityType = 4
	SecurityTypeFuturesStrategy SecurityType = 5
	SecurityTypeStockOption     SecurityType = 6
	SecurityTypeFuturesOption   SecurityType = 7
	SecurityTypeIndexOption     SecurityType = 8
	SecurityTypeBond            SecurityType = 9
	SecurityTypeMutualFund      SecurityType = 10
)

var securityTypeNames = map[SecurityType]string{
	SecurityTypeUnset:           "UNSET",
	SecurityTypeFuture:          "FUTURE",
	SecurityTypeStock:           "STOCK",
	SecurityTypeForex:           "FOREX",
	SecurityTypeIndex:           "INDEX",
	SecurityTypeFuturesStrategy: "FUTURES_STRATEGY",
	SecurityTypeStockOption:     "STOCK_OPTION",
	SecurityTypeFuturesOption:   "FUTURES_OPTION",
	SecurityTypeIndexOption:     "INDEX_OPTION",
	SecurityTypeBond:            "BOND",
	SecurityTypeMutualFund:      "MUTUAL_FUND",
}

func (v SecurityType) String() string { return enumName(securityTypeNames, v) }

// HistoricalDataInterval is a bar length in seconds; zero requests ticks.
type HistoricalDataInterval int32

const (
	IntervalTick      HistoricalDataInterval = 0
	Interval1Second   HistoricalDataInterval = 1
	Interval2Seconds  HistoricalDataInterval = 2
	Interval4Seconds  HistoricalDataInterval = 4
	Interval5Seconds  HistoricalDataInterval = 5
	Interval10Seconds HistoricalDataInterval = 10
	Interval30Seconds HistoricalDataInterval = 30
	Interval1Minute   HistoricalDataInterval = 60
	Interval1Day      HistoricalDataInterval = 86400
	Interval1Week     HistoricalDataInterval = 604800
)

var historicalDataIntervalNames = map[HistoricalDataInterval]string{
	IntervalTick:      "TICK",
	Interval1Second:   "1S",
	Interval2Seconds:  "2S",
	Interval4Seconds:  "4S",
	Interval5Seconds:  "5S",
	Interval10Seconds: "10S",
	Interval30Seconds: "30S",
	Interval1Minute:   "1M",
	Interval1Day:      "1D",
	Interval1Week:     "1W",
}

func (v HistoricalDataInterval) String() string {
	return enumName(historicalDataIntervalNames, v)
}

func enumName[E ~int32](names map[E]string, v E) string {
	if name, ok := names[v]; ok {
		return name
	}
	return strconv.Itoa(int(v))
}
