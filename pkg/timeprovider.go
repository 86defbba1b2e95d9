package pkg

import "time"

// TimeProvider supplies the time stamped on recorded messages
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider reads the wall clock
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time { return time.Now() }
