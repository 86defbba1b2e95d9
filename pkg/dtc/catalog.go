package dtc

import (
	"fmt"
	"slices"
)

// Messages a client sends to a server.
var clientTypes = []MessageType{
	TypeLogonRequest,
	TypeHeartbeat,
	TypeLogoffRequest,
	TypeMarketDataRequest,
	TypeMarketDepthRequest,
	TypeSubmitNewSingleOrder,
	TypeSubmitNewOCOOrder,
	TypeCancelReplaceOrder,
	TypeCancelOrder,
	TypeOpenOrdersRequest,
	TypeHistoricalOrderFillsRequest,
	TypeCurrentPositionsRequest,
	TypeAccountsRequest,
	TypeExchangeListRequest,
	TypeSymbolsForExchangeRequest,
	TypeUnderlyingSymbolsForExchangeRequest,
	TypeSymbolsForUnderlyingRequest,
	TypeSecurityDefinitionForSymbolRequest,
	TypeHistoricalPriceDataRequest,
}

// Messages a server sends to a client.
var serverTypes = []MessageType{
	TypeLogonResponse,
	TypeHeartbeat,
	TypeDisconnectFromServerNoReconnect,
	TypeMarketDataFeedStatus,
	TypeMarketDataReject,
	TypeMarketDataSnapshot,
	TypeMarketDepthFullUpdate20,
	TypeMarketDepthIncrementalUpdate,
	TypeTradeIncrementalUpdate,
	TypeQuoteIncrementalUpdate,
	TypeFundamentalDataResponse,
	TypeTradeIncrementalUpdateCompact,
	TypeDailyVolumeIncrementalUpdate,
	TypeDailyHighIncrementalUpdate,
	TypeDailyLowIncrementalUpdate,
	TypeMarketDataFeedSymbolStatus,
	TypeQuoteIncrementalUpdateCompact,
	TypeMarketDepthIncrementalUpdateCompact,
	TypeSettlementIncrementalUpdate,
	TypeDailyOpenIncrementalUpdate,
	TypeMarketDepthReject,
	TypeMarketDepthSnapshotLevel,
	TypeMarketDepthFullUpdate10,
	TypeOpenInterestIncrementalUpdate,
	TypeOrderUpdateReport,
	TypeOpenOrdersRequestReject,
	TypeHistoricalOrderFillReport,
	TypePositionReport,
	TypeCurrentPositionsRequestReject,
	TypeAccountListResponse,
	TypeExchangeListResponse,
	TypeSecurityDefinitionResponse,
	TypeAccountBalanceUpdate,
	TypeUserMessage,
	TypeGeneralLogMessage,
	TypeHistoricalPriceDataHeaderResponse,
	TypeHistoricalPriceDataReject,
	TypeHistoricalPriceDataRecordResponse,
	TypeHistoricalPriceDataTickRecordResponse,
}

// catalog maps type tags to layouts for one direction.
type catalog map[MessageType]*Layout

var (
	clientCatalog catalog
	serverCatalog catalog
)

func init() {
	clientCatalog = buildCatalog(clientTypes)
	serverCatalog = buildCatalog(serverTypes)
}

func buildCatalog(types []MessageType) catalog {
	c := make(catalog, len(types))
	for _, t := range types {
		l, ok := registry[t]
		if !ok {
			panic(fmt.Sprintf("dtc: no layout declared for %s", t))
		}
		c[t] = l
	}
	return c
}

func catalogFor(dir Direction) (catalog, error) {
	switch dir {
	case FromClient:
		return clientCatalog, nil
	case FromServer:
		return serverCatalog, nil
	default:
		return nil, fmt.Errorf("dtc: invalid direction %d", dir)
	}
}

// LookupLayout returns the layout of t among the messages sent in dir.
func LookupLayout(dir Direction, t MessageType) (*Layout, error) {
	c, err := catalogFor(dir)
	if err != nil {
		return nil, err
	}
	l, ok := c[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s from %s", ErrUnknownType, t, dir)
	}
	return l, nil
}

// CanonicalSize returns the current-version size of t among the messages
// sent in dir.
func CanonicalSize(dir Direction, t MessageType) (int, error) {
	l, err := LookupLayout(dir, t)
	if err != nil {
		return 0, err
	}
	return l.size, nil
}

// Types lists the message types sent in dir, in tag order.
func Types(dir Direction) []MessageType {
	c, err := catalogFor(dir)
	if err != nil {
		return nil
	}
	out := make([]MessageType, 0, len(c))
	for t := range c {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// Known reports whether t has a layout in either direction.
func Known(t MessageType) bool {
	_, ok := registry[t]
	return ok
}
