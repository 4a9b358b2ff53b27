// Package script classifies Unicode code-points into the closed set of
// script categories the render-preparation pipeline knows about.
//
// The categories are deliberately coarser than Unicode's script property:
// they partition text by which font family has to render it, not by
// linguistic script. CJKUnified, for instance, covers Han ideographs and
// Japanese kana alike, since a single CJK family serves both.
/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package script

import (
	"golang.org/x/text/language"
)

// Tag identifies a script category of the pipeline.
type Tag int

// The closed set of script categories.
const (
	Unknown Tag = iota
	Latin
	Thai
	Hangul
	CJKUnified
	Arabic
	Hebrew
	EmojiPictographic
	SymbolPunctuation
)

func (t Tag) String() string {
	switch t {
	case Latin:
		return "Latin"
	case Thai:
		return "Thai"
	case Hangul:
		return "Hangul"
	case CJKUnified:
		return "CJKUnified"
	case Arabic:
		return "Arabic"
	case Hebrew:
		return "Hebrew"
	case EmojiPictographic:
		return "EmojiPictographic"
	case SymbolPunctuation:
		return "SymbolPunctuation"
	}
	return "Unknown"
}

// ParseTag converts the textual form of a tag, as it appears in font
// manifests, back into a Tag. Unrecognized input yields Unknown.
func ParseTag(s string) Tag {
	switch s {
	case "Latin":
		return Latin
	case "Thai":
		return Thai
	case "Hangul":
		return Hangul
	case "CJKUnified":
		return CJKUnified
	case "Arabic":
		return Arabic
	case "Hebrew":
		return Hebrew
	case "EmojiPictographic":
		return EmojiPictographic
	case "SymbolPunctuation":
		return SymbolPunctuation
	}
	return Unknown
}

// ISO15924 maps a tag onto the ISO 15924 script identifier which shapers
// and OpenType layout engines expect (cf. BCP 47 script subtags).
func (t Tag) ISO15924() language.Script {
	code := "Zzzz"
	switch t {
	case Latin:
		code = "Latn"
	case Thai:
		code = "Thai"
	case Hangul:
		code = "Hang"
	case CJKUnified:
		code = "Hani"
	case Arabic:
		code = "Arab"
	case Hebrew:
		code = "Hebr"
	case EmojiPictographic:
		code = "Zsye"
	case SymbolPunctuation:
		code = "Zyyy"
	}
	return language.MustParseScript(code)
}

// RightToLeft reports whether text of this script is written right-to-left.
func (t Tag) RightToLeft() bool {
	return t == Arabic || t == Hebrew
}
