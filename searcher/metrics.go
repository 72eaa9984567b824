package searcher

import "time"

// MoveMetrics summarizes one decision's worth of search work.
type MoveMetrics struct {
	StartTime    time.Time
	Duration     time.Duration
	Cycles       int // completed simulation cycles
	FullPlayouts int // rollouts that reached the end of the game
	TreeSize     int // nodes in the arena when the decision committed
}

type metricsCollector struct {
	startTime    time.Time
	cycles       int
	fullPlayouts int
}

func (m *metricsCollector) start() {
	m.startTime = time.Now()
	m.cycles = 0
	m.fullPlayouts = 0
}

func (m *metricsCollector) addCycle() {
	m.cycles++
}

func (m *metricsCollector) addFullPlayout() {
	m.fullPlayouts++
}

func (m *metricsCollector) complete(treeSize int) MoveMetrics {
	return MoveMetrics{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Cycles:       m.cycles,
		FullPlayouts: m.fullPlayouts,
		TreeSize:     treeSize,
	}
}
