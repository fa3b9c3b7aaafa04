package clipboard

import (
	"context"
	"time"

	"github.com/berrythewa/copycopy/internal/types"
	"go.uber.org/zap"
)

const (
	DefaultPollInterval        = 250 * time.Millisecond
	DefaultDoubleCopyThreshold = 280 * time.Millisecond
)

// Source hands out the current clipboard capture. Callers compare change
// counts to tell new captures from repeated reads.
type Source interface {
	Read(ctx context.Context) (*types.Payload, error)
}

// Event is emitted once per new capture
type Event struct {
	Payload *types.Payload
	Result  *types.Result
	// DoubleCopy is set when this capture followed the previous one within
	// the double-copy threshold
	DoubleCopy bool
}

type Handler func(Event)

type MonitorOptions struct {
	Interval            time.Duration
	DoubleCopyThreshold time.Duration
}

// Monitor polls a Source and classifies every new capture
type Monitor struct {
	source     Source
	classifier *Classifier
	processor  *Processor
	handler    Handler
	logger     *zap.Logger

	interval  time.Duration
	threshold time.Duration
	now       func() time.Time

	lastChange  int64
	lastCapture time.Time
	seen        bool
}

func NewMonitor(source Source, classifier *Classifier, processor *Processor, handler Handler, opts MonitorOptions, logger *zap.Logger) *Monitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultPollInterval
	}
	if opts.DoubleCopyThreshold <= 0 {
		opts.DoubleCopyThreshold = DefaultDoubleCopyThreshold
	}
	return &Monitor{
		source:     source,
		classifier: classifier,
		processor:  processor,
		handler:    handler,
		logger:     logger,
		interval:   opts.Interval,
		threshold:  opts.DoubleCopyThreshold,
		now:        time.Now,
	}
}

// Run polls until ctx is done
func (m *Monitor) Run(ctx context.Context) error {
	m.logger.Info("Starting clipboard monitor", zap.Duration("interval", m.interval))

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		m.poll(ctx)
		select {
		case <-ctx.Done():
			m.logger.Info("Clipboard monitor stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (m *Monitor) poll(ctx context.Context) {
	payload, err := m.source.Read(ctx)
	if err != nil {
		m.logger.Error("Error reading clipboard", zap.Error(err))
		return
	}
	if payload == nil || (m.seen && payload.ChangeCount == m.lastChange) {
		return
	}
	m.seen = true
	m.lastChange = payload.ChangeCount

	captured := payload.Captured
	if captured.IsZero() {
		captured = m.now()
	}
	double := !m.lastCapture.IsZero() && captured.Sub(m.lastCapture) <= m.threshold
	m.lastCapture = captured

	if m.processor != nil {
		if payload = m.processor.Process(payload); payload == nil {
			return
		}
	}

	result := m.classifier.Classify(payload)
	m.logger.Info("New clipboard content detected",
		zap.String("kind", string(result.Kind)),
		zap.Int64("change_count", result.ChangeCount),
		zap.Bool("double_copy", double))

	if m.handler != nil {
		m.handler(Event{Payload: payload, Result: result, DoubleCopy: double})
	}
}
