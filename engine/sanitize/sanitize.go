package sanitize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Clean repairs a raw string into canonical, render-safe text.
//
// Clean is pure and total: it performs no I/O, touches no shared state
// and always produces output. It is idempotent, i.e.
// Clean(Clean(s)) == Clean(s) for every s.
func Clean(raw string) (string, []Anomaly) {
	s := norm.NFC.String(raw)
	s, anomalies := stripBanned(s)
	s = mapSmartPunctuation(s)
	s, thaiAnomalies := repairThai(s)
	anomalies = append(anomalies, thaiAnomalies...)
	s = collapseSpaces(s)
	if len(anomalies) > 0 {
		tracer().Debugf("sanitized %d anomalies out of input of length %d", len(anomalies), len(raw))
	}
	return s, anomalies
}

// The banned set: invisible formatting characters and raw controls which
// naive glyph placement turns into tofu, spacing glitches or reordered
// output. Every banned character is replaced by a single space, never
// deleted outright, so that unrelated tokens cannot merge.
func isBanned(r rune) bool {
	switch r {
	case '​', '‌', '‍': // zero-width space/non-joiner/joiner
		return true
	case '\uFEFF': // BOM / zero-width no-break space
		return true
	case '­': // soft hyphen
		return true
	case '‎', '‏', '؜': // implicit directional marks
		return true
	}
	if r >= '‪' && r <= '‮' { // bidi embedding and override
		return true
	}
	if r >= '⁦' && r <= '⁩' { // bidi isolates
		return true
	}
	if r < 0x20 && r != '\n' { // C0 controls
		return true
	}
	if r == 0x7F || (r >= 0x80 && r <= 0x9F) { // DEL and C1 controls
		return true
	}
	return false
}

func stripBanned(s string) (string, []Anomaly) {
	var anomalies []Anomaly
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range s {
		if isBanned(r) {
			anomalies = append(anomalies, Anomaly{
				Kind:   BannedCharacterStripped,
				Text:   string(r),
				Offset: i,
			})
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), anomalies
}

// mapSmartPunctuation replaces typographic quotes and dashes with their
// ASCII equivalents. The report fonts carry inconsistent glyphs for
// these, and an apostrophe from a CJK-leaning font next to Latin text is
// visually off.
func mapSmartPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '“', '”', '„', '‟': // double quotes
			return '"'
		case '‘', '’', '‚', '‛': // single quotes
			return '\''
		case '–', '—', '―': // en dash, em dash, horizontal bar
			return '-'
		}
		return r
	}, s)
}

// collapseSpaces reduces every run of two or more plain ASCII spaces to a
// single space.
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	spacePending := false
	for _, r := range s {
		if r == ' ' {
			spacePending = true
			continue
		}
		if spacePending {
			b.WriteByte(' ')
			spacePending = false
		}
		b.WriteRune(r)
	}
	if spacePending {
		b.WriteByte(' ')
	}
	return b.String()
}
