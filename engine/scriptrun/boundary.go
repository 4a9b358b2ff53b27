package scriptrun

import "strings"

// InsertBoundaries inserts a single ASCII space at every transition
// between two runs whose scripts must not be shaped together: one of the
// two is shaping-sensitive (Thai, CJK, Hangul, emoji) and the other
// differs from it. Without the separator, a fallback-happy renderer
// shapes both runs as one glyph run and mixes their baselines and
// metrics at the seam.
//
// The returned text may be longer than the input; the returned runs have
// their offsets recomputed over the new text. An inserted space is
// absorbed into the run preceding it, so the character before every
// incompatible transition is guaranteed to be a space.
//
// The function is idempotent: a transition that is already separated by
// a space on either side is left untouched.
func InsertBoundaries(text string, runs []Run) (string, []Run) {
	if len(runs) < 2 {
		return text, runs
	}
	var b strings.Builder
	b.Grow(len(text) + len(runs))
	out := make([]Run, len(runs))
	inserted := 0
	shift := 0
	for i, run := range runs {
		b.WriteString(text[run.Start:run.End])
		out[i] = Run{Start: run.Start + shift, End: run.End + shift, Script: run.Script}
		if i+1 < len(runs) && needsBoundary(text, run, runs[i+1]) {
			b.WriteByte(' ')
			out[i].End++
			shift++
			inserted++
		}
	}
	if inserted > 0 {
		tracer().Debugf("inserted %d script boundary separators", inserted)
	}
	return b.String(), out
}

func needsBoundary(text string, a, b Run) bool {
	if a.Script == b.Script {
		return false
	}
	if !a.Script.ShapingSensitive() && !b.Script.ShapingSensitive() {
		return false
	}
	// already separated?
	if text[a.End-1] == ' ' || text[b.Start] == ' ' {
		return false
	}
	return true
}
