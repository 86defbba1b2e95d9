package pkg

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
	"github.com/lolocompany/dtc-replay/pkg/kafka"
	"github.com/lolocompany/dtc-replay/pkg/stream"
	"github.com/lolocompany/dtc-replay/pkg/transcoder"
)

// Source yields complete DTC messages for recording. A zero Timestamp on a
// returned entry means "stamp it on arrival".
type Source interface {
	Next(ctx context.Context) (transcoder.Entry, error)
	Close() error
}

// Drainer is a Source that still has entries to hand out once recording
// stops, such as the logoff that ends a session.
type Drainer interface {
	Drain() []transcoder.Entry
}

// SessionSource records a live DTC session: it logs on, keeps the session
// alive with heartbeats and yields both the messages it sends and the ones
// the server sends back, in the order they crossed the connection.
type SessionSource struct {
	conn    net.Conn
	session *stream.Session
	logger  zerolog.Logger

	cancel   context.CancelFunc
	hbDone   chan struct{}
	hbErr    error
	stopOnce sync.Once
	readDone chan struct{}

	mu        sync.Mutex
	queue     []transcoder.Entry
	readErr   error
	loggedOff bool
	notify    chan struct{}
}

// NewSessionSource logs on over conn and starts the heartbeat and read
// loops. The source owns conn from here on.
func NewSessionSource(ctx context.Context, conn net.Conn, opts stream.LogonOptions, maxSize int, logger zerolog.Logger) (*SessionSource, error) {
	s := &SessionSource{
		conn:     conn,
		session:  stream.NewSession(conn, maxSize, logger),
		logger:   logger,
		hbDone:   make(chan struct{}),
		readDone: make(chan struct{}),
		notify:   make(chan struct{}, 1),
	}
	s.session.OnSend(func(msg []byte) {
		s.push(dtc.FromClient, msg, nil)
	})

	if err := s.session.Logon(opts); err != nil {
		conn.Close()
		return nil, err
	}

	hbCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	go func() {
		defer close(s.hbDone)
		s.hbErr = s.session.Heartbeat(hbCtx, opts.HeartbeatInterval)
	}()
	go s.readLoop()
	return s, nil
}

// push queues a message stamped with its arrival time, or records the error
// that ended the read loop.
func (s *SessionSource) push(dir dtc.Direction, msg []byte, err error) {
	s.mu.Lock()
	if err != nil {
		s.readErr = err
	} else {
		s.queue = append(s.queue, transcoder.Entry{
			Timestamp: time.Now().UTC(),
			Direction: dir,
			Message:   msg,
		})
	}
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *SessionSource) readLoop() {
	defer close(s.readDone)
	for {
		msg, _, err := s.session.Reader().Next()
		if err != nil {
			s.push(dtc.FromServer, nil, err)
			return
		}
		s.push(dtc.FromServer, msg, nil)
	}
}

// Next returns the oldest message queued in either direction, waiting for
// one if the queue is empty. Once the server side ends and the queue is
// drained, Next returns the read error (io.EOF on a clean close).
func (s *SessionSource) Next(ctx context.Context) (transcoder.Entry, error) {
	for {
		s.mu.Lock()
		if len(s.queue) > 0 {
			e := s.queue[0]
			s.queue = s.queue[1:]
			s.mu.Unlock()
			return e, nil
		}
		err := s.readErr
		s.mu.Unlock()
		if err != nil {
			return transcoder.Entry{}, err
		}

		select {
		case <-ctx.Done():
			return transcoder.Entry{}, ctx.Err()
		case <-s.notify:
		}
	}
}

// Drain stops the heartbeat loop, logs off and returns every message still
// queued, the logoff request last among those sent.
func (s *SessionSource) Drain() []transcoder.Entry {
	s.stopHeartbeat()
	s.logoff()

	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.queue
	s.queue = nil
	return out
}

// Close logs off unless Drain already did, stops both loops and closes the
// connection.
func (s *SessionSource) Close() error {
	s.stopHeartbeat()
	s.logoff()
	err := s.conn.Close()
	<-s.readDone
	return err
}

func (s *SessionSource) stopHeartbeat() {
	s.stopOnce.Do(func() {
		s.cancel()
		<-s.hbDone
		if s.hbErr != nil {
			s.logger.Warn().Err(s.hbErr).Msg("heartbeat loop stopped")
		}
	})
}

func (s *SessionSource) logoff() {
	s.mu.Lock()
	done := s.loggedOff
	s.loggedOff = true
	s.mu.Unlock()
	if done {
		return
	}
	if err := s.session.Logoff("recording finished"); err != nil {
		s.logger.Debug().Err(err).Msg("logoff failed")
	}
}

// KafkaSource records DTC messages from a Kafka topic
type KafkaSource struct {
	consumer *kafka.Consumer
}

// NewKafkaSource wraps a consumer. A non-nil offset seeks before the first read.
func NewKafkaSource(consumer *kafka.Consumer, offset *int64) (*KafkaSource, error) {
	if offset != nil {
		if err := consumer.SetOffset(*offset); err != nil {
			return nil, err
		}
	}
	return &KafkaSource{consumer: consumer}, nil
}

// Next returns the next record, keeping its Kafka timestamp
func (s *KafkaSource) Next(ctx context.Context) (transcoder.Entry, error) {
	for {
		m, err := s.consumer.ReadNextMessage(ctx)
		if errors.Is(err, io.EOF) {
			// End of batch, continue to read next batch
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return transcoder.Entry{}, ctx.Err()
			}
			return transcoder.Entry{}, err
		}
		return transcoder.Entry{Timestamp: m.Time, Direction: m.Direction, Message: m.Value}, nil
	}
}

func (s *KafkaSource) Close() error {
	return s.consumer.Close()
}
