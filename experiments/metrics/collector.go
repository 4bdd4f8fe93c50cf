package metrics

import (
	"time"
)

type SearchMetric struct {
	Depth       int
	Evaluation  string
	Guarded     bool
	Duration    time.Duration
	Nodes       int // Expanded maximizer and minimizer nodes
	Evaluations int // Leaf evaluations
	Cutoffs     int // Alpha and beta cutoffs
	Value       float64
}

type MoveMetric struct {
	Step  int
	Agent int // Agent index, 0 is Pacman
	Move  string
	SearchMetric
}

type GameMetric struct {
	Layout     string
	Win        bool
	Score      float64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector counts search work for one decision. Collectors are not safe for
// concurrent use.
type Collector interface {
	Start(depth int, evaluation string, guarded bool)
	AddNode()
	AddEvaluation()
	AddCutoff()
	Complete(value float64) SearchMetric
}

type collector struct {
	depth       int
	evaluation  string
	guarded     bool
	startTime   time.Time
	nodes       int
	evaluations int
	cutoffs     int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, evaluation string, guarded bool) {
	*m = collector{
		depth:      depth,
		evaluation: evaluation,
		guarded:    guarded,
		startTime:  time.Now(),
	}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddEvaluation() {
	m.evaluations++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) Complete(value float64) SearchMetric {
	return SearchMetric{
		Depth:       m.depth,
		Evaluation:  m.evaluation,
		Guarded:     m.guarded,
		Duration:    time.Since(m.startTime),
		Nodes:       m.nodes,
		Evaluations: m.evaluations,
		Cutoffs:     m.cutoffs,
		Value:       value,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, evaluation string, guarded bool) {}
func (m *dummyCollector) AddNode()                                         {}
func (m *dummyCollector) AddEvaluation()                                   {}
func (m *dummyCollector) AddCutoff()                                       {}
func (m *dummyCollector) Complete(value float64) SearchMetric              { return SearchMetric{} }
