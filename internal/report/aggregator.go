// Package report groups per-file results and prints the run summary.
package report

import "github.com/UnknownOlympus/metamap/internal/models"

// Group is a set of files sharing identical coordinates.
type Group struct {
	Coordinates models.Coordinates
	Files       []string
}

// Aggregator groups file results by exact coordinate equality. Groups and
// the files inside them keep first-seen order.
type Aggregator struct {
	groups  []*Group
	index   map[models.Coordinates]int
	missing []string
}

// NewAggregator allocates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{index: make(map[models.Coordinates]int)}
}

// Add records a single file result.
func (a *Aggregator) Add(result models.FileResult) {
	if result.Coordinates == nil {
		a.missing = append(a.missing, result.Path)
		return
	}

	key := *result.Coordinates
	idx, ok := a.index[key]
	if !ok {
		idx = len(a.groups)
		a.index[key] = idx
		a.groups = append(a.groups, &Group{Coordinates: key})
	}
	a.groups[idx].Files = append(a.groups[idx].Files, result.Path)
}

// Groups returns the coordinate groups in first-seen order.
func (a *Aggregator) Groups() []Group {
	groups := make([]Group, 0, len(a.groups))
	for _, g := range a.groups {
		groups = append(groups, Group{Coordinates: g.Coordinates, Files: append([]string(nil), g.Files...)})
	}
	return groups
}

// Missing returns the files without usable coordinates, in input order.
func (a *Aggregator) Missing() []string {
	return append([]string(nil), a.missing...)
}
