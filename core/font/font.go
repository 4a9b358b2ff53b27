/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package font

import (
	"os"
	"path"
	"strings"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// ScalableFont is a loaded, parsed font file.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// LoadOpenTypeFont reads and parses an OpenType/TrueType font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		tracer().Errorf("cannot parse font file %s: %v", fontfile, err)
		return nil, err
	}
	f.Filepath = fontfile
	tracer().Infof("loaded font %q from %s", f.Fontname, fontfile)
	return f, nil
}

// ParseOpenTypeFont parses font binary data in OpenType/TrueType format.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// --- Weights ---------------------------------------------------------------

// Weight is the weight of a font variant. The pipeline distinguishes just
// regular and bold; finer CSS-style gradations are collapsed onto these two.
type Weight int

// Weights understood by font manifests.
const (
	Regular Weight = iota
	Bold
)

func (w Weight) String() string {
	if w == Bold {
		return "Bold"
	}
	return "Regular"
}

// ParseWeight converts the textual form used in font manifests.
// Unrecognized input maps to Regular.
func ParseWeight(s string) Weight {
	if strings.EqualFold(s, "bold") {
		return Bold
	}
	return Regular
}

// XWeight converts to the weight scale of golang.org/x/image/font.
func (w Weight) XWeight() xfont.Weight {
	if w == Bold {
		return xfont.WeightBold
	}
	return xfont.WeightNormal
}

// GuessWeight tries to guess a font's weight from the font's file name.
func GuessWeight(fontfilename string) Weight {
	fontfilename = path.Base(fontfilename)
	ext := path.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	s := strings.Split(fontfilename, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "bold", "b", "xbold", "black":
			return Bold
		case "normal", "medium", "regular", "r":
			return Regular
		}
	}
	if strings.Contains(fontfilename, "bold") {
		return Bold
	}
	return Regular
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else fails. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	tracer().Infof("fallback font is %q", gofont.Fontname)
	return gofont
}
