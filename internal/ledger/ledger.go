package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/theirongolddev/dledger/internal/calendar"
	"github.com/theirongolddev/dledger/internal/model"
	"github.com/theirongolddev/dledger/internal/pipeline"
	"github.com/theirongolddev/dledger/internal/store"
)

// Ledger runs commands and render cycles against an injected store.
// It keeps no record state of its own: every cycle reloads from the store.
// Cycles are serialized, so a load-change-save never interleaves with another.
type Ledger struct {
	mu      sync.Mutex
	store   store.Store
	counter calendar.Counter
	now     func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New returns a ledger over s that counts days with c.
func New(s store.Store, c calendar.Counter, opts ...Option) *Ledger {
	l := &Ledger{store: s, counter: c, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Counter returns the active day-count policy.
func (l *Ledger) Counter() calendar.Counter { return l.counter }

// View is one render cycle: load the list, sort it by remaining days,
// persist the sorted order and build the report.
func (l *Ledger) View() (model.Report, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.view()
}

func (l *Ledger) view() (model.Report, error) {
	records, err := l.store.Load()
	if err != nil {
		return model.Report{}, fmt.Errorf("loading debts: %w", err)
	}

	now := l.now()
	sorted := pipeline.SortByRemaining(records, now, l.counter)
	if err := l.store.Save(sorted); err != nil {
		return model.Report{}, fmt.Errorf("saving sorted debts: %w", err)
	}

	return pipeline.Build(sorted, now, l.counter), nil
}

// Dispatch loads the list, applies cmd, saves, and re-renders. Indices in
// cmd refer to the order of the last View, which is the stored order.
func (l *Ledger) Dispatch(cmd Command) (model.Report, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.store.Load()
	if err != nil {
		return model.Report{}, fmt.Errorf("loading debts: %w", err)
	}

	next, err := Apply(records, cmd)
	if err != nil {
		return model.Report{}, err
	}

	if err := l.store.Save(next); err != nil {
		return model.Report{}, fmt.Errorf("saving debts: %w", err)
	}
	return l.view()
}
