// Package dtc implements the fixed-layout binary message format of the DTC
// (Data and Trading Communications) protocol.
//
// Every message starts with a 4-byte little-endian header carrying the total
// message length and a type tag. The body is a C struct laid out with 8-byte
// packing. Peers running different protocol versions interoperate by copying
// the common prefix of a message: a longer message from a newer peer has its
// unknown suffix ignored, a shorter message from an older peer leaves the
// missing fields zeroed and reported as absent by the field accessors.
//
// Each message kind is described by a *Layout and a set of typed field
// descriptors:
//
//	r := dtc.LogonRequest.New()
//	dtc.LogonRequest.Username.Set(r, "trader1")
//	dtc.LogonRequest.TradeMode.Set(r, dtc.TradeModeLive)
//	buf := r.Encode()
//
//	in, err := dtc.DecodeMessage(dtc.FromClient, buf)
//	name, ok := dtc.LogonRequest.Username.Get(in)
//
// The package holds no mutable state after initialization and is safe for
// concurrent use. Records are not; each one belongs to a single goroutine.
package dtc
