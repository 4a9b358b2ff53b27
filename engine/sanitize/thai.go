package sanitize

import "strings"

// Thai grapheme repair.
//
// Source records stem from several input systems, some of which store
// vowel/tone clusters in non-canonical order or with SARA AM decomposed
// into NIKHAHIT + SARA AA. Font mark-positioning tables expect the
// canonical order (consonant, vowel, tone mark); anything else makes a
// naive renderer stack marks onto the wrong anchor. The repair below is
// a heuristic: it restores the order canonical fonts expect and drops
// marks that have nothing to attach to.

const (
	saraAA   = 'า' // spacing vowel
	saraAM   = 'ำ' // spacing vowel with inherent nikhahit
	nikhahit = 'ํ'
)

func isThai(r rune) bool {
	return r >= 0x0E00 && r <= 0x0E7F
}

// isThaiMark reports the combining (zero-advance) characters of the Thai
// block.
func isThaiMark(r rune) bool {
	switch {
	case r == 0x0E31: // mai han-akat
		return true
	case r >= 0x0E34 && r <= 0x0E3A: // above and below vowels, phinthu
		return true
	case r >= 0x0E47 && r <= 0x0E4E: // maitaikhu, tone marks, signs
		return true
	}
	return false
}

// markRank orders combining marks within a cluster: vowels attach to the
// base first, tone marks stack above them, other signs come last.
func markRank(r rune) int {
	switch {
	case r >= 0x0E48 && r <= 0x0E4B: // tone marks
		return 2
	case r >= 0x0E4C && r <= 0x0E4E: // thanthakhat, nikhahit, yamakkan
		return 3
	}
	return 1 // vowel signs and maitaikhu
}

// markClass partitions marks for duplicate detection. Two marks of one
// class on a single base cannot render meaningfully.
func markClass(r rune) int {
	switch {
	case r >= 0x0E38 && r <= 0x0E3A: // below vowels
		return 1
	case r >= 0x0E48 && r <= 0x0E4B: // tone marks
		return 2
	case r >= 0x0E4C && r <= 0x0E4E: // signs
		return 3
	}
	return 0 // above vowels (0E31, 0E34–0E37, 0E47)
}

// repairThai rewrites Thai clusters into canonical form. Non-Thai text
// passes through untouched.
func repairThai(s string) (string, []Anomaly) {
	if !strings.ContainsFunc(s, isThai) {
		return s, nil
	}
	runes := []rune(s)
	offs := make([]int, 0, len(runes))
	for i := range s {
		offs = append(offs, i)
	}
	var anomalies []Anomaly
	out := make([]rune, 0, len(runes))
	i := 0
	for i < len(runes) {
		r := runes[i]
		if !isThai(r) {
			out = append(out, r)
			i++
			continue
		}
		if isThaiMark(r) {
			// no Thai base character in front to attach to
			anomalies = append(anomalies, Anomaly{
				Kind:   OrphanMarkDropped,
				Text:   string(r),
				Offset: offs[i],
			})
			i++
			continue
		}
		// a base character followed by its combining marks
		clusterStart := i
		j := i + 1
		var marks []rune
		for j < len(runes) && isThaiMark(runes[j]) {
			marks = append(marks, runes[j])
			j++
		}
		origMarks := string(marks)
		marks, dropped := dedupeMarks(marks)
		for _, d := range dropped {
			anomalies = append(anomalies, Anomaly{
				Kind:   DuplicateMarkRemoved,
				Text:   string(d),
				Offset: offs[clusterStart],
			})
		}
		marks = sortMarks(marks)
		// recompose nikhahit + trailing sara aa into sara am
		recomposed := false
		if k := indexRune(marks, nikhahit); k >= 0 && j < len(runes) && runes[j] == saraAA {
			marks = append(marks[:k], marks[k+1:]...)
			j++ // consume the sara aa, emit sara am below
			recomposed = true
		}
		reordered := len(dropped) == 0 && string(marks) != origMarks
		if reordered || recomposed {
			anomalies = append(anomalies, Anomaly{
				Kind:   DecomposedMarkFixed,
				Text:   string(runes[clusterStart:j]),
				Offset: offs[clusterStart],
			})
		}
		out = append(out, r)
		out = append(out, marks...)
		if recomposed {
			out = append(out, saraAM)
		}
		i = j
	}
	return string(out), anomalies
}

// dedupeMarks keeps the first mark of every class, dropping later ones.
func dedupeMarks(marks []rune) (kept []rune, dropped []rune) {
	if len(marks) < 2 {
		return marks, nil
	}
	seen := make(map[int]bool, len(marks))
	for _, m := range marks {
		c := markClass(m)
		if seen[c] {
			dropped = append(dropped, m)
			continue
		}
		seen[c] = true
		kept = append(kept, m)
	}
	return kept, dropped
}

// sortMarks orders marks by rank, keeping the relative order of equal
// ranks (insertion sort, clusters carry at most a handful of marks).
func sortMarks(marks []rune) []rune {
	for i := 1; i < len(marks); i++ {
		for j := i; j > 0 && markRank(marks[j-1]) > markRank(marks[j]); j-- {
			marks[j-1], marks[j] = marks[j], marks[j-1]
		}
	}
	return marks
}

func indexRune(runes []rune, r rune) int {
	for i, x := range runes {
		if x == r {
			return i
		}
	}
	return -1
}
