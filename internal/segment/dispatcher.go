package segment

import (
	"fmt"

	"github.com/alexisbeaulieu97/promptr/internal/config"
	"github.com/alexisbeaulieu97/promptr/internal/logger"
)

// Outcome records what happened to one configured segment.
type Outcome struct {
	Index    int
	Name     string
	Segments []Segment
	Err      error
}

// Dispatcher evaluates configured segments against a registry. A failing
// entry is logged and dropped; it never fails the whole prompt.
type Dispatcher struct {
	registry *Registry
	logger   *logger.Logger
}

// NewDispatcher returns a dispatcher over registry.
func NewDispatcher(registry *Registry, log *logger.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, logger: log}
}

// Evaluate runs every entry in order and concatenates their segments.
func (d *Dispatcher) Evaluate(configs []config.SegmentConfig, state *State) []Segment {
	segments, _ := d.EvaluateDetailed(configs, state)
	return segments
}

// EvaluateDetailed is Evaluate plus one Outcome per entry.
func (d *Dispatcher) EvaluateDetailed(configs []config.SegmentConfig, state *State) ([]Segment, []Outcome) {
	var segments []Segment
	outcomes := make([]Outcome, 0, len(configs))

	for i, cfg := range configs {
		produced, err := d.evaluateOne(cfg, state)
		outcomes = append(outcomes, Outcome{Index: i, Name: cfg.Name, Segments: produced, Err: err})
		if err != nil {
			d.logger.WithFields(map[string]any{"segment": cfg.Name, "index": i}).Warn(err, "dropping segment")
			continue
		}
		segments = append(segments, produced...)
	}

	return segments, outcomes
}

func (d *Dispatcher) evaluateOne(cfg config.SegmentConfig, state *State) (segments []Segment, err error) {
	runner, err := d.registry.Get(cfg.Name)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			segments = nil
			err = NewEvaluationError(runner.Metadata().Name, fmt.Errorf("panic: %v", r))
		}
	}()

	return runner.Run(cfg.Args, state)
}
