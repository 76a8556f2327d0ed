// Package metrics counts what kbctl watch did while it ran.
package metrics

import (
	"sort"
	"sync"
	"time"
)

// Collector aggregates reconciliation counters per trigger source.
type Collector struct {
	mu      sync.RWMutex
	started time.Time
	sources map[string]*SourceMetrics
}

// SourceMetrics captures the counters for one file that triggers
// reconciliation.
type SourceMetrics struct {
	Source      string
	Checked     uint64
	Reinstalled uint64
	Errors      uint64
	LastChecked time.Time
	LastApplied time.Time
	LastErrored time.Time
}

// Totals aggregates counters across all sources in a snapshot.
type Totals struct {
	Checked     uint64
	Reinstalled uint64
	Errors      uint64
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Started time.Time
	Totals  Totals
	Sources []SourceMetrics
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{started: time.Now(), sources: make(map[string]*SourceMetrics)}
}

// RecordCheck counts a comparison of installed and generated rules.
func (c *Collector) RecordCheck(source string) {
	c.update(source, func(m *SourceMetrics, now time.Time) {
		m.Checked++
		m.LastChecked = now
	})
}

// RecordReinstall counts an update that rewrote karabiner.json.
func (c *Collector) RecordReinstall(source string) {
	c.update(source, func(m *SourceMetrics, now time.Time) {
		m.Reinstalled++
		m.LastApplied = now
	})
}

// RecordError counts a failed reconciliation.
func (c *Collector) RecordError(source string) {
	c.update(source, func(m *SourceMetrics, now time.Time) {
		m.Errors++
		m.LastErrored = now
	})
}

func (c *Collector) update(source string, mutate func(*SourceMetrics, time.Time)) {
	if c == nil {
		return
	}
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sources == nil {
		c.sources = make(map[string]*SourceMetrics)
	}
	m, ok := c.sources[source]
	if !ok {
		m = &SourceMetrics{Source: source}
		c.sources[source] = m
	}
	mutate(m, now)
}

// Snapshot returns the current counters sorted by source.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	snap := Snapshot{Started: c.started}
	if len(c.sources) == 0 {
		return snap
	}
	snap.Sources = make([]SourceMetrics, 0, len(c.sources))
	for _, m := range c.sources {
		clone := *m
		snap.Sources = append(snap.Sources, clone)
		snap.Totals.Checked += clone.Checked
		snap.Totals.Reinstalled += clone.Reinstalled
		snap.Totals.Errors += clone.Errors
	}
	sort.Slice(snap.Sources, func(i, j int) bool {
		return snap.Sources[i].Source < snap.Sources[j].Source
	})
	return snap
}
