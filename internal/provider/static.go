package provider

import (
	"context"
	"sync"
	"time"

	"github.com/guttosm/quotelens/internal/domain/models"
)

// Static is a MarketDataProvider returning fixed data. It records the calls
// it receives so tests can assert on the requested window.
type Static struct {
	Series     models.Series
	HistoryErr error
	Info       Info
	ProfileErr error
	PingErr    error

	mu           sync.Mutex
	historyCalls int
	profileCalls int
	lastStart    time.Time
	lastEnd      time.Time
	lastInterval string
}

var _ MarketDataProvider = (*Static)(nil)

func (s *Static) History(_ context.Context, _ string, start, end time.Time, interval string) (models.Series, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.historyCalls++
	s.lastStart, s.lastEnd, s.lastInterval = start, end, interval
	if s.HistoryErr != nil {
		return nil, s.HistoryErr
	}
	out := make(models.Series, len(s.Series))
	copy(out, s.Series)
	return out, nil
}

func (s *Static) Profile(_ context.Context, _ string) (Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profileCalls++
	if s.ProfileErr != nil {
		return nil, s.ProfileErr
	}
	return s.Info, nil
}

// Calls returns how many times History and Profile were invoked.
func (s *Static) Calls() (history, profile int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.historyCalls, s.profileCalls
}

// LastHistoryRequest returns the window and interval of the latest History call.
func (s *Static) LastHistoryRequest() (start, end time.Time, interval string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastStart, s.lastEnd, s.lastInterval
}

// Ping returns PingErr.
func (s *Static) Ping(context.Context) error {
	return s.PingErr
}
