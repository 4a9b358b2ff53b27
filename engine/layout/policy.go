/*
Package layout supplies script-aware layout directives for the PDF
assembly layer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package layout

import (
	"github.com/npillmayer/textprep/core/dimen"
	"github.com/npillmayer/textprep/core/script"
)

// Direction is the direction to typeset text in.
type Direction int

// Direction to typeset text in.
const (
	LeftToRight Direction = iota
	RightToLeft
)

func (d Direction) String() string {
	if d == RightToLeft {
		return "right-to-left"
	}
	return "left-to-right"
}

// Policy carries the layout directives for one script.
type Policy struct {
	LineHeightMultiplier float64     // relative to font size
	LetterSpacing        dimen.Dimen // additional inter-glyph spacing
	HyphenationAllowed   bool
	Direction            Direction
}

// PolicyFor returns the layout directives for a script. It is a pure
// lookup, total over the closed tag set.
//
// Scripts with stacking diacritics get headroom above the line and zero
// letter-spacing: extra tracking desyncs mark-to-base anchors. Scripts
// without word-boundary spaces must not be hyphenated, since a naive
// line breaker would split inside a grapheme or semantic unit.
func PolicyFor(tag script.Tag) Policy {
	switch tag {
	case script.Thai:
		return Policy{LineHeightMultiplier: 1.5, HyphenationAllowed: false}
	case script.Arabic:
		return Policy{LineHeightMultiplier: 1.4, HyphenationAllowed: false, Direction: RightToLeft}
	case script.Hebrew:
		return Policy{LineHeightMultiplier: 1.35, HyphenationAllowed: false, Direction: RightToLeft}
	case script.CJKUnified, script.Hangul:
		return Policy{LineHeightMultiplier: 1.3, HyphenationAllowed: false}
	case script.EmojiPictographic:
		return Policy{LineHeightMultiplier: 1.3, HyphenationAllowed: false}
	case script.Latin:
		return Policy{
			LineHeightMultiplier: 1.2,
			LetterSpacing:        dimen.Zero,
			HyphenationAllowed:   true,
		}
	}
	// SymbolPunctuation and Unknown: neutral defaults
	return Policy{LineHeightMultiplier: 1.2, HyphenationAllowed: false}
}
