package stream

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
)

// Subscription is a market data request sent after logon.
type Subscription struct {
	Symbol   string
	Exchange string
	// Depth requests market depth in addition to market data.
	Depth bool
}

// LogonOptions configures the client side of a session.
type LogonOptions struct {
	Username          string
	Password          string
	ClientName        string
	TradeMode         dtc.TradeMode
	HeartbeatInterval time.Duration
	Subscriptions     []Subscription
}

// Session is the client end of a DTC connection: it logs on, subscribes and
// keeps the connection alive with heartbeats while the caller reads.
type Session struct {
	conn   io.ReadWriter
	reader *Reader
	logger zerolog.Logger

	mu     sync.Mutex
	writer *Writer
	onSend func(msg []byte)
}

// NewSession wraps an established connection.
func NewSession(conn io.ReadWriter, maxSize int, logger zerolog.Logger) *Session {
	return &Session{
		conn:   conn,
		reader: NewReader(conn, maxSize),
		writer: NewWriter(conn),
		logger: logger,
	}
}

// Reader returns the reader for inbound messages.
func (s *Session) Reader() *Reader { return s.reader }

// Send writes one record. It is safe to call concurrently with the
// heartbeat loop.
func (s *Session) Send(r *dtc.Record) error {
	msg := r.Encode()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writer.Write(msg); err != nil {
		return err
	}
	if s.onSend != nil {
		s.onSend(msg)
	}
	return nil
}

// OnSend registers fn to observe every message written by the session.
// fn runs under the send lock and must not call Send.
func (s *Session) OnSend(fn func(msg []byte)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSend = fn
}

// Logon sends the logon request and the configured subscriptions. The logon
// response is left for the caller to read.
func (s *Session) Logon(opts LogonOptions) error {
	logon := dtc.LogonRequest.New()
	dtc.LogonRequest.Username.Set(logon, opts.Username)
	dtc.LogonRequest.Password.Set(logon, opts.Password)
	dtc.LogonRequest.ClientName.Set(logon, opts.ClientName)
	if opts.TradeMode != 0 {
		dtc.LogonRequest.TradeMode.Set(logon, opts.TradeMode)
	}
	dtc.LogonRequest.HeartbeatIntervalInSeconds.Set(logon, int32(opts.HeartbeatInterval/time.Second))
	if err := s.Send(logon); err != nil {
		return fmt.Errorf("failed to send logon request: %w", err)
	}

	for i, sub := range opts.Subscriptions {
		id := uint16(i + 1)
		req := dtc.MarketDataRequest.New()
		dtc.MarketDataRequest.MarketDataSymbolID.Set(req, id)
		dtc.MarketDataRequest.Symbol.Set(req, sub.Symbol)
		dtc.MarketDataRequest.Exchange.Set(req, sub.Exchange)
		if err := s.Send(req); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", sub.Symbol, err)
		}
		if sub.Depth {
			depth := dtc.MarketDepthRequest.New()
			dtc.MarketDepthRequest.MarketDataSymbolID.Set(depth, id)
			dtc.MarketDepthRequest.Symbol.Set(depth, sub.Symbol)
			dtc.MarketDepthRequest.Exchange.Set(depth, sub.Exchange)
			if err := s.Send(depth); err != nil {
				return fmt.Errorf("failed to request depth for %s: %w", sub.Symbol, err)
			}
		}
		s.logger.Debug().Str("symbol", sub.Symbol).Uint16("symbol_id", id).Bool("depth", sub.Depth).Msg("subscribed")
	}
	return nil
}

// Heartbeat sends a heartbeat every interval until ctx is done or a write
// fails.
func (s *Session) Heartbeat(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return nil
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			hb := dtc.Heartbeat.New()
			dtc.Heartbeat.CurrentDateTime.Set(hb, now.Unix())
			if err := s.Send(hb); err != nil {
				return fmt.Errorf("failed to send heartbeat: %w", err)
			}
		}
	}
}

// Logoff sends a logoff request with the given reason.
func (s *Session) Logoff(reason string) error {
	r := dtc.LogoffRequest.New()
	dtc.LogoffRequest.Reason.Set(r, reason)
	return s.Send(r)
}
