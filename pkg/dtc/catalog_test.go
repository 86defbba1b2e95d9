package dtc

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalSize(t *testing.T) {
	size, err := CanonicalSize(FromClient, TypeLogonRequest)
	require.NoError(t, err)
	require.Equal(t, 280, size)

	size, err = CanonicalSize(FromServer, TypeMarketDepthSnapshotLevel)
	require.NoError(t, err)
	require.Equal(t, 40, size)

	// Heartbeats flow both ways.
	for _, dir := range []Direction{FromClient, FromServer} {
		size, err = CanonicalSize(dir, TypeHeartbeat)
		require.NoError(t, err)
		require.Equal(t, 16, size)
	}
}

func TestCanonicalSize_UnknownType(t *testing.T) {
	for _, dir := range []Direction{FromClient, FromServer} {
		size, err := CanonicalSize(dir, 65535)
		require.ErrorIs(t, err, ErrUnknownType)
		require.Zero(t, size)
	}

	_, err := CanonicalSize(FromClient, TypeLogonResponse)
	require.ErrorIs(t, err, ErrUnknownType)
	_, err = CanonicalSize(FromServer, TypeSubmitNewSingleOrder)
	require.ErrorIs(t, err, ErrUnknownType)
	_, err = CanonicalSize(FromServer, TypeSymbolSearchByDescription)
	require.ErrorIs(t, err, ErrUnknownType)

	_, err = CanonicalSize(Direction(9), TypeHeartbeat)
	require.Error(t, err)
}

func TestTypes(t *testing.T) {
	client := Types(FromClient)
	server := Types(FromServer)
	require.Len(t, client, 19)
	require.Len(t, server, 39)
	require.True(t, slices.IsSorted(client))
	require.True(t, slices.IsSorted(server))
	require.Nil(t, Types(0))

	for _, typ := range append(client, server...) {
		require.True(t, Known(typ))
		require.NotEqual(t, strconv.Itoa(int(typ)), typ.String(), "type %d has no name", typ)
		size, err := CanonicalSize(directionOf(typ), typ)
		require.NoError(t, err)
		require.GreaterOrEqual(t, size, HeaderSize)
	}
}

func TestParseMessageType(t *testing.T) {
	typ, err := ParseMessageType("LOGON_REQUEST")
	require.NoError(t, err)
	require.Equal(t, TypeLogonRequest, typ)

	typ, err = ParseMessageType("market_depth_snapshot_level")
	require.NoError(t, err)
	require.Equal(t, TypeMarketDepthSnapshotLevel, typ)

	typ, err = ParseMessageType("301")
	require.NoError(t, err)
	require.Equal(t, TypeOrderUpdateReport, typ)

	_, err = ParseMessageType("NOT_A_MESSAGE")
	require.ErrorIs(t, err, ErrUnknownType)

	require.Equal(t, "65535", MessageType(65535).String())
}

func TestParseDirection(t *testing.T) {
	dir, err := ParseDirection("Client")
	require.NoError(t, err)
	require.Equal(t, FromClient, dir)

	dir, err = ParseDirection("server")
	require.NoError(t, err)
	require.Equal(t, FromServer, dir)

	_, err = ParseDirection("both")
	require.Error(t, err)
}

func TestHeader(t *testing.T) {
	h, err := ParseHeader([]byte{0x18, 0x01, 0x01, 0x00, 0xff})
	require.NoError(t, err)
	require.Equal(t, Header{Size: 280, Type: TypeLogonRequest}, h)
	require.Equal(t, []byte{0x18, 0x01, 0x01, 0x00}, h.Bytes())

	_, err = ParseHeader([]byte{0x18, 0x01, 0x01})
	require.ErrorIs(t, err, ErrTruncated)

	require.NoError(t, Header{Size: 4, Type: TypeAccountsRequest}.Validate(0))
	require.ErrorIs(t, Header{Size: 2}.Validate(0), ErrMalformedLength)
	require.ErrorIs(t, Header{Size: 300}.Validate(280), ErrMalformedLength)
}
