package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	ArticlesProcessed  int64
	IneligibleFiltered int64
	Blacklisted        int64
	BelowThreshold     int64
	DuplicatesFiltered int64
	FetchFailures      int64

	// Timings
	LastPipelineTime    time.Duration
	AveragePipelineTime time.Duration
	TotalPipelineTime   time.Duration
	PipelineRuns        int64

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) IncrementArticlesProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesProcessed++
}

func (m *Metrics) IncrementIneligibleFiltered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.IneligibleFiltered++
}

func (m *Metrics) IncrementBlacklisted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Blacklisted++
}

func (m *Metrics) IncrementBelowThreshold() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BelowThreshold++
}

func (m *Metrics) IncrementDuplicatesFiltered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesFiltered++
}

func (m *Metrics) IncrementDuplicatesFilteredBy(n int64) {
	if n <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesFiltered += n
}

func (m *Metrics) IncrementFetchFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchFailures++
}

func (m *Metrics) RecordPipelineTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastPipelineTime = duration
	m.TotalPipelineTime += duration
	m.PipelineRuns++

	if m.PipelineRuns > 0 {
		m.AveragePipelineTime = m.TotalPipelineTime / time.Duration(m.PipelineRuns)
	}
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"articles_processed":       m.ArticlesProcessed,
		"ineligible_filtered":      m.IneligibleFiltered,
		"blacklisted":              m.Blacklisted,
		"below_threshold":          m.BelowThreshold,
		"duplicates_filtered":      m.DuplicatesFiltered,
		"fetch_failures":           m.FetchFailures,
		"last_pipeline_time_ms":    m.LastPipelineTime.Milliseconds(),
		"average_pipeline_time_ms": m.AveragePipelineTime.Milliseconds(),
		"last_run_time":            m.LastRunTime.Format(time.RFC3339),
		"last_error_time":          m.LastErrorTime.Format(time.RFC3339),
		"last_error":               m.LastError,
		"is_healthy":               m.IsHealthy,
	}
}
