/*
Package resolve maps script runs onto verified font families.

Font selection is a pure function of the run list and the manifest:
first family in manifest priority order for the run's script, bold
variant only if the manifest carries one. Nothing here depends on
renderer fallback behavior.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package resolve

import (
	"fmt"
	"sort"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textprep/core/font"
	"github.com/npillmayer/textprep/core/font/manifest"
	"github.com/npillmayer/textprep/core/script"
	"github.com/npillmayer/textprep/engine/scriptrun"
)

// tracer writes to trace with key 'textprep.fonts'
func tracer() tracing.Trace {
	return tracing.Select("textprep.fonts")
}

// A FontAssignment binds one script run to a font family and weight from
// the manifest.
type FontAssignment struct {
	Run    scriptrun.Run
	Family string
	Weight font.Weight
}

// NoCoverageError reports a script present in the input for which the
// manifest lists no family. It is recoverable per document: the caller
// may substitute a fallback family and continue.
type NoCoverageError struct {
	Script script.Tag
}

func (e *NoCoverageError) Error() string {
	return fmt.Sprintf("font manifest has no family covering script %s", e.Script)
}

// Resolve assigns a family and weight to every run.
//
// For each run the first family listed in the manifest for the run's
// script wins. If bold is requested and the family has no bold variant,
// the regular weight of the same family is used: keeping glyph metrics
// consistent within a family beats weight fidelity.
//
// Runs tagged SymbolPunctuation or Unknown without direct coverage fall
// back to the manifest's Unknown-script default family.
//
// If any run's script is uncovered, Resolve returns the assignments it
// could make (uncovered runs keep an empty Family) together with a
// NoCoverageError for the first uncovered script.
func Resolve(runs []scriptrun.Run, m *manifest.Manifest, bold bool) ([]FontAssignment, error) {
	assignments := make([]FontAssignment, 0, len(runs))
	var missing *NoCoverageError
	for _, run := range runs {
		family, ok := familyFor(run.Script, m)
		if !ok {
			tracer().Infof("no font coverage for script %s", run.Script)
			if missing == nil {
				missing = &NoCoverageError{Script: run.Script}
			}
			assignments = append(assignments, FontAssignment{Run: run})
			continue
		}
		assignments = append(assignments, FontAssignment{
			Run:    run,
			Family: family,
			Weight: weightFor(family, m, bold),
		})
	}
	if missing != nil {
		return assignments, missing
	}
	return assignments, nil
}

func familyFor(tag script.Tag, m *manifest.Manifest) (string, bool) {
	if fams := m.FamiliesFor(tag); len(fams) > 0 {
		return fams[0], true
	}
	// shared characters render acceptably with the document default
	if tag == script.SymbolPunctuation || tag == script.Unknown {
		if fams := m.FamiliesFor(script.Unknown); len(fams) > 0 {
			return fams[0], true
		}
	}
	return "", false
}

func weightFor(family string, m *manifest.Manifest, bold bool) font.Weight {
	if bold && m.HasWeight(family, font.Bold) {
		return font.Bold
	}
	return font.Regular
}

// UsedFamilies reports the distinct families of a set of assignments,
// sorted. A caller with on-demand font loading registers only these.
func UsedFamilies(assignments []FontAssignment) []string {
	seen := make(map[string]bool)
	var fams []string
	for _, a := range assignments {
		if a.Family != "" && !seen[a.Family] {
			seen[a.Family] = true
			fams = append(fams, a.Family)
		}
	}
	sort.Strings(fams)
	return fams
}
