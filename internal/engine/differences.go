package engine

import (
	"sort"

	"github.com/dm/esmon-go/internal/model"
)

// Differences is the two-way set difference between the configured node
// names and the nodes actually observed in a fetch cycle.
type Differences struct {
	Missing []string // configured but not observed
	Extra   []string // observed but not configured
}

// None reports whether the configured and observed sets match.
func (d Differences) None() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0
}

// NodeDifferences compares configured node names against observed records by
// node name. Input order is irrelevant; both result lists are sorted.
func NodeDifferences(configured []string, records []model.NodeRecord) Differences {
	want := make(map[string]bool, len(configured))
	for _, name := range configured {
		want[name] = true
	}
	got := make(map[string]bool, len(records))
	for _, r := range records {
		got[r.Name] = true
	}

	d := Differences{Missing: []string{}, Extra: []string{}}
	for name := range want {
		if !got[name] {
			d.Missing = append(d.Missing, name)
		}
	}
	for name := range got {
		if !want[name] {
			d.Extra = append(d.Extra, name)
		}
	}
	sort.Strings(d.Missing)
	sort.Strings(d.Extra)
	return d
}
