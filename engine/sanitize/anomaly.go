package sanitize

import "fmt"

// AnomalyKind classifies an irregularity found during sanitization.
type AnomalyKind int

// Anomaly kinds. None of them is an error; output is always produced.
const (
	BannedCharacterStripped AnomalyKind = iota
	DecomposedMarkFixed
	OrphanMarkDropped
	DuplicateMarkRemoved
)

func (k AnomalyKind) String() string {
	switch k {
	case BannedCharacterStripped:
		return "BannedCharacterStripped"
	case DecomposedMarkFixed:
		return "DecomposedMarkFixed"
	case OrphanMarkDropped:
		return "OrphanMarkDropped"
	case DuplicateMarkRemoved:
		return "DuplicateMarkRemoved"
	}
	return "UnknownAnomaly"
}

// Anomaly records one repaired irregularity for observability.
// Offset is a byte offset into the NFC-normalized input of the stage
// that found the irregularity.
type Anomaly struct {
	Kind   AnomalyKind
	Text   string // the original, pre-repair substring
	Offset int
}

func (a Anomaly) String() string {
	return fmt.Sprintf("%s(%q@%d)", a.Kind, a.Text, a.Offset)
}
