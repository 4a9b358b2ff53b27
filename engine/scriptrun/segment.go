package scriptrun

import (
	"fmt"
	"unicode"

	"github.com/npillmayer/textprep/core/script"
)

// A Run is a maximal contiguous span of text in one script category.
// Start and End are byte offsets into the segmented string, End being
// exclusive.
type Run struct {
	Start  int
	End    int
	Script script.Tag
}

func (r Run) String() string {
	return fmt.Sprintf("[%d:%d %s]", r.Start, r.End, r.Script)
}

// Segment splits sanitized text into script runs.
//
// The returned runs are contiguous, non-overlapping, cover the whole
// string with no gap, and no two adjacent runs share a script tag.
//
// Punctuation, whitespace and combining characters from the shared
// Unicode blocks never open a run of their own: they inherit the tag of
// the run they follow. Only at the very start of the text, where there
// is nothing to inherit from, can they form a leading SymbolPunctuation
// run.
func Segment(text string) []Run {
	if text == "" {
		return nil
	}
	var runs []Run
	var cur Run
	first := true
	for i, r := range text {
		tag := script.ForRune(r)
		if first {
			cur = Run{Start: i, Script: tag}
			first = false
			continue
		}
		if tag == script.SymbolPunctuation || unicode.IsSpace(r) || tag == cur.Script {
			continue
		}
		cur.End = i
		runs = append(runs, cur)
		cur = Run{Start: i, Script: tag}
	}
	cur.End = len(text)
	runs = append(runs, cur)
	tracer().Debugf("segmented %d bytes into %d script runs", len(text), len(runs))
	return runs
}
