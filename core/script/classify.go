package script

import "unicode"

// Code-point ranges per category. Membership is decided by fixed block
// ranges rather than the full Unicode script property: block tables are
// total, cheap, and stable across Unicode versions for the blocks we care
// about.

type blockRange struct {
	lo, hi rune
}

var thaiBlocks = []blockRange{
	{0x0E00, 0x0E7F}, // Thai
}

var hangulBlocks = []blockRange{
	{0xAC00, 0xD7A3}, // Hangul syllables
	{0x1100, 0x11FF}, // Hangul Jamo
	{0x3130, 0x318F}, // Hangul compatibility Jamo
	{0xA960, 0xA97F}, // Hangul Jamo extended-A
	{0xD7B0, 0xD7FF}, // Hangul Jamo extended-B
}

var cjkBlocks = []blockRange{
	{0x4E00, 0x9FFF},   // CJK unified ideographs
	{0x3400, 0x4DBF},   // extension A
	{0xF900, 0xFAFF},   // compatibility ideographs
	{0x3040, 0x309F},   // Hiragana
	{0x30A0, 0x30FF},   // Katakana
	{0x31F0, 0x31FF},   // Katakana phonetic extensions
	{0xFF66, 0xFF9D},   // halfwidth Katakana
	{0x20000, 0x2A6DF}, // extension B
	{0x2A700, 0x2EBEF}, // extensions C–F
}

var arabicBlocks = []blockRange{
	{0x0600, 0x06FF}, // Arabic
	{0x0750, 0x077F}, // Arabic supplement
	{0x08A0, 0x08FF}, // Arabic extended-A
	{0xFB50, 0xFDFF}, // presentation forms-A
	{0xFE70, 0xFEFF}, // presentation forms-B (excl. BOM, see below)
}

var hebrewBlocks = []blockRange{
	{0x0590, 0x05FF}, // Hebrew
	{0xFB1D, 0xFB4F}, // presentation forms
}

var emojiBlocks = []blockRange{
	{0x1F300, 0x1F5FF}, // misc symbols and pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport and map symbols
	{0x1F900, 0x1F9FF}, // supplemental symbols and pictographs
	{0x1FA70, 0x1FAFF}, // symbols and pictographs extended-A
	{0x1F1E6, 0x1F1FF}, // regional indicators
	{0x2600, 0x26FF},   // misc symbols
	{0x2700, 0x27BF},   // dingbats
}

func in(r rune, blocks []blockRange) bool {
	for _, b := range blocks {
		if r >= b.lo && r <= b.hi {
			return true
		}
	}
	return false
}

// ForRune classifies a single code-point.
//
// Code-points outside all script blocks fall back to Latin when they are
// Basic Latin or Latin-1 (letters, digits, ASCII punctuation, space), to
// SymbolPunctuation when they are punctuation, symbols, whitespace or
// combining marks from the shared blocks, and to Unknown otherwise.
func ForRune(r rune) Tag {
	switch {
	case in(r, thaiBlocks):
		return Thai
	case in(r, hangulBlocks):
		return Hangul
	case in(r, cjkBlocks):
		return CJKUnified
	case r == 0xFEFF: // BOM, inside Arabic presentation forms-B block
		return SymbolPunctuation
	case in(r, arabicBlocks):
		return Arabic
	case in(r, hebrewBlocks):
		return Hebrew
	case in(r, emojiBlocks):
		return EmojiPictographic
	case r < 0x0100:
		return Latin
	case unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r):
		return SymbolPunctuation
	case unicode.Is(unicode.Mn, r) || isVariationSelector(r):
		// combining marks and variation selectors attach to whatever
		// precedes them
		return SymbolPunctuation
	}
	return Unknown
}

func isVariationSelector(r rune) bool {
	return r >= 0xFE00 && r <= 0xFE0F
}

// ShapingSensitive reports whether a script's glyphs carry metrics that a
// naive renderer must not mix with a neighboring run of another script.
func (t Tag) ShapingSensitive() bool {
	switch t {
	case Thai, CJKUnified, Hangul, EmojiPictographic:
		return true
	}
	return false
}
