package manifest

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/npillmayer/textprep/core"
	"github.com/npillmayer/textprep/core/font"
	"github.com/npillmayer/textprep/core/script"
)

// Verification failure modes. All of them are startup-fatal: a manifest
// that cannot be verified is not used.
var (
	ErrParse        = errors.New("font manifest unparsable")
	ErrFileMissing  = errors.New("font file missing")
	ErrHashMismatch = errors.New("font file digest mismatch")
)

// EntryError reports which manifest entry failed verification.
type EntryError struct {
	Entry Entry
	err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("font manifest entry %q/%s: %v", e.Entry.Family, e.Entry.Weight, e.err)
}

func (e *EntryError) Unwrap() error {
	return e.err
}

// Entry describes one font file of the catalog.
type Entry struct {
	Family    string
	Weight    font.Weight
	Script    script.Tag
	Path      string // relative to the manifest file
	SHA256    string // hex digest over the file's bytes
	SizeBytes uint64
}

type entryJSON struct {
	Family    string `json:"family"`
	Weight    string `json:"weight"`
	Script    string `json:"script"`
	Path      string `json:"path"`
	SHA256    string `json:"sha256"`
	SizeBytes uint64 `json:"size"`
}

// UnmarshalJSON decodes the on-disk form, rejecting unknown weight and
// script names.
func (e *Entry) UnmarshalJSON(b []byte) error {
	var aux entryJSON
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if aux.Family == "" || aux.Path == "" {
		return fmt.Errorf("%w: entry without family or path", ErrParse)
	}
	switch aux.Weight {
	case "Regular", "Bold":
	default:
		return fmt.Errorf("%w: unknown weight %q", ErrParse, aux.Weight)
	}
	if script.ParseTag(aux.Script) == script.Unknown && aux.Script != "Unknown" {
		return fmt.Errorf("%w: unknown script %q", ErrParse, aux.Script)
	}
	e.Family = aux.Family
	e.Weight = font.ParseWeight(aux.Weight)
	e.Script = script.ParseTag(aux.Script)
	e.Path = aux.Path
	e.SHA256 = aux.SHA256
	e.SizeBytes = aux.SizeBytes
	return nil
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{
		Family:    e.Family,
		Weight:    e.Weight.String(),
		Script:    e.Script.String(),
		Path:      e.Path,
		SHA256:    e.SHA256,
		SizeBytes: e.SizeBytes,
	})
}

type manifestJSON struct {
	Fonts []Entry `json:"fonts"`
}

// Manifest is the verified, immutable font catalog.
//
// Family order within a script follows manifest order, which doubles as
// resolution priority: provisioning lists the preferred family (e.g. a
// universal family covering Thai and Latin together) first.
type Manifest struct {
	entries  []Entry
	byKey    map[string]int // family|weight -> entry index
	byScript map[script.Tag][]string
	fonts    map[string]*font.ScalableFont
}

func key(family string, w font.Weight) string {
	return family + "|" + w.String()
}

// Load reads a manifest file, verifies every referenced font file against
// its recorded digest and parses it as an OpenType font.
//
// Any failure is returned as an error wrapping ErrParse, ErrFileMissing
// or ErrHashMismatch; the caller is expected to treat all of them as
// fatal at process startup.
func Load(manifestPath string) (*Manifest, error) {
	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, core.WrapError(fmt.Errorf("%w: %v", ErrParse, err), core.EMISSING,
			"font manifest cannot be read: %s", manifestPath)
	}
	var mj manifestJSON
	if err := json.Unmarshal(raw, &mj); err != nil {
		if !errors.Is(err, ErrParse) {
			err = fmt.Errorf("%w: %v", ErrParse, err)
		}
		return nil, core.WrapError(err, core.EINVALID,
			"font manifest is not valid JSON: %s", manifestPath)
	}
	if len(mj.Fonts) == 0 {
		return nil, core.WrapError(fmt.Errorf("%w: no font entries", ErrParse), core.EINVALID,
			"font manifest is empty: %s", manifestPath)
	}
	m := &Manifest{
		entries:  mj.Fonts,
		byKey:    make(map[string]int),
		byScript: make(map[script.Tag][]string),
		fonts:    make(map[string]*font.ScalableFont),
	}
	basedir := filepath.Dir(manifestPath)
	for i, entry := range m.entries {
		f, err := verify(basedir, entry)
		if err != nil {
			return nil, err
		}
		k := key(entry.Family, entry.Weight)
		if j, dup := m.byKey[k]; dup {
			// a family may cover several scripts with one file, but two
			// different files under one family+weight is a provisioning error
			if m.entries[j].Path != entry.Path {
				return nil, core.WrapError(
					&EntryError{Entry: entry, err: fmt.Errorf("%w: conflicting duplicate entry", ErrParse)},
					core.EINVALID, "font manifest lists %q/%s twice with different files",
					entry.Family, entry.Weight)
			}
		} else {
			m.byKey[k] = i
			m.fonts[k] = f
		}
		if !contains(m.byScript[entry.Script], entry.Family) {
			m.byScript[entry.Script] = append(m.byScript[entry.Script], entry.Family)
		}
		tracer().Debugf("manifest verified %q/%s for script %s", entry.Family, entry.Weight, entry.Script)
	}
	tracer().Infof("font manifest loaded, %d entries, %d families", len(m.entries), len(m.Families()))
	return m, nil
}

// verify re-hashes a font file and parses it.
func verify(basedir string, entry Entry) (*font.ScalableFont, error) {
	want, err := hex.DecodeString(entry.SHA256)
	if err != nil || len(want) != sha256.Size {
		return nil, core.WrapError(
			&EntryError{Entry: entry, err: fmt.Errorf("%w: bad sha256 digest", ErrParse)},
			core.EINVALID, "manifest digest for %q is not a sha256 hex string", entry.Family)
	}
	fpath := filepath.Join(basedir, entry.Path)
	bytez, err := os.ReadFile(fpath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.WrapError(&EntryError{Entry: entry, err: ErrFileMissing},
				core.EMISSING, "font file does not exist: %s", fpath)
		}
		return nil, core.WrapError(&EntryError{Entry: entry, err: err},
			core.EMISSING, "font file cannot be read: %s", fpath)
	}
	if entry.SizeBytes != 0 && uint64(len(bytez)) != entry.SizeBytes {
		return nil, core.WrapError(&EntryError{Entry: entry, err: ErrHashMismatch},
			core.EINVALID, "font file %s has size %d, manifest says %d",
			fpath, len(bytez), entry.SizeBytes)
	}
	sum := sha256.Sum256(bytez)
	if !bytes.Equal(sum[:], want) {
		return nil, core.WrapError(&EntryError{Entry: entry, err: ErrHashMismatch},
			core.EINVALID, "font file %s does not match its manifest digest", fpath)
	}
	f, err := font.ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, core.WrapError(
			&EntryError{Entry: entry, err: fmt.Errorf("%w: %v", ErrParse, err)},
			core.EINVALID, "font file %s is not a parsable OpenType font", fpath)
	}
	f.Filepath = fpath
	return f, nil
}

// Entries returns a copy of all catalog entries in manifest order.
func (m *Manifest) Entries() []Entry {
	entries := make([]Entry, len(m.entries))
	copy(entries, m.entries)
	return entries
}

// Entry looks up the catalog entry for a family and weight.
func (m *Manifest) Entry(family string, w font.Weight) (Entry, bool) {
	i, ok := m.byKey[key(family, w)]
	if !ok {
		return Entry{}, false
	}
	return m.entries[i], true
}

// Font returns the verified, parsed font for a family and weight, or nil.
func (m *Manifest) Font(family string, w font.Weight) *font.ScalableFont {
	return m.fonts[key(family, w)]
}

// HasWeight reports whether a family carries a variant of the given weight.
func (m *Manifest) HasWeight(family string, w font.Weight) bool {
	_, ok := m.byKey[key(family, w)]
	return ok
}

// FamiliesFor returns the families covering a script, in priority order.
func (m *Manifest) FamiliesFor(tag script.Tag) []string {
	fams := make([]string, len(m.byScript[tag]))
	copy(fams, m.byScript[tag])
	return fams
}

// Families returns all family names of the catalog, sorted.
func (m *Manifest) Families() []string {
	seen := make(map[string]bool)
	var fams []string
	for _, e := range m.entries {
		if !seen[e.Family] {
			seen[e.Family] = true
			fams = append(fams, e.Family)
		}
	}
	sort.Strings(fams)
	return fams
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
