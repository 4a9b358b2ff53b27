package pipeline

import (
	"fmt"
	"sort"
)

// Anomaly is one repaired or degraded spot, attributed to a field.
// Kind carries the sanitize anomaly kinds plus
// "FallbackFamilySubstituted" for coverage gaps.
type Anomaly struct {
	Kind   string
	Field  string
	Offset int
}

func (a Anomaly) String() string {
	return fmt.Sprintf("%s(%s@%d)", a.Kind, a.Field, a.Offset)
}

// Report aggregates observability data over one Prepare call.
type Report struct {
	UsedFamilies []string
	Anomalies    []Anomaly
}

func (r *Report) addFamilies(fams []string) {
	for _, f := range fams {
		if !r.hasFamily(f) {
			r.UsedFamilies = append(r.UsedFamilies, f)
		}
	}
}

func (r *Report) hasFamily(f string) bool {
	for _, x := range r.UsedFamilies {
		if x == f {
			return true
		}
	}
	return false
}

func (r *Report) sortFamilies() {
	sort.Strings(r.UsedFamilies)
}
