// Package report collects the session start and end reports the
// surrounding app turns into transactions. The core never persists them.
package report

import (
	"context"
	"sync"
	"time"

	"github.com/abenezerd/bingocaller/internal/domain"
	"github.com/abenezerd/bingocaller/internal/logger"
)

// Compile-time interface check.
var _ domain.ReportSink = (*MemorySink)(nil)

// MemorySink keeps reports in memory for the process lifetime. Safe for
// concurrent use.
type MemorySink struct {
	mu     sync.Mutex
	starts []*domain.StartReport
	ends   []*domain.EndReport
	log    *logger.Logger
}

// NewMemorySink creates an empty in-memory report sink.
func NewMemorySink(log *logger.Logger) *MemorySink {
	return &MemorySink{log: log}
}

// GameStarted records a start report.
func (s *MemorySink) GameStarted(ctx context.Context, report *domain.StartReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.starts = append(s.starts, report)
	s.log.Info("report: game %s started (%d cards, %.2f collected)",
		report.SessionID, report.CardsSold, report.AmountCollected)
	return nil
}

// GameEnded records an end report.
func (s *MemorySink) GameEnded(ctx context.Context, report *domain.EndReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ends = append(s.ends, report)
	s.log.Info("report: game %s ended (%d called, winner=%t, took %s)",
		report.SessionID, report.NumbersCalled, report.WinnerFound, report.Duration.Round(time.Second))
	return nil
}

// Starts returns a copy of the recorded start reports.
func (s *MemorySink) Starts() []*domain.StartReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*domain.StartReport(nil), s.starts...)
}

// Ends returns a copy of the recorded end reports.
func (s *MemorySink) Ends() []*domain.EndReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*domain.EndReport(nil), s.ends...)
}
