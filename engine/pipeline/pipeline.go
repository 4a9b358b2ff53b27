package pipeline

import (
	"errors"
	"sync"

	"github.com/npillmayer/uax/grapheme"

	"github.com/npillmayer/textprep/core/font/manifest"
	"github.com/npillmayer/textprep/core/locate"
	"github.com/npillmayer/textprep/core/script"
	"github.com/npillmayer/textprep/engine/resolve"
	"github.com/npillmayer/textprep/engine/sanitize"
	"github.com/npillmayer/textprep/engine/scriptrun"
)

// Field is one free-text field of a source record.
type Field struct {
	Name      string // e.g. "title", "summary", "channelName"
	Text      string
	Emphasize bool // request the bold weight
}

// Document is the renderable form of one field, handed to the PDF
// assembly layer. Text is sanitized and boundary-separated; runs and
// assignments cover it completely.
type Document struct {
	Field       string
	Text        string
	Runs        []scriptrun.Run
	Assignments []resolve.FontAssignment
	Graphemes   int // number of grapheme clusters, for layout estimates
}

var graphemeSetup sync.Once

// PrepareField runs the full pipeline over one field.
//
// PrepareField is total: sanitization cannot fail, and a script with no
// manifest coverage is substituted with the manifest's default family
// (or the embedded fallback font) rather than dropping the text. Every
// repair and substitution is reported as an anomaly.
func PrepareField(f Field, m *manifest.Manifest) (Document, []Anomaly) {
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)
	//
	text, sanAnomalies := sanitize.Clean(f.Text)
	anomalies := make([]Anomaly, 0, len(sanAnomalies))
	for _, a := range sanAnomalies {
		anomalies = append(anomalies, Anomaly{Kind: a.Kind.String(), Field: f.Name, Offset: a.Offset})
	}
	runs := scriptrun.Segment(text)
	text, runs = scriptrun.InsertBoundaries(text, runs)
	assignments, err := resolve.Resolve(runs, m, f.Emphasize)
	if err != nil {
		var noCov *resolve.NoCoverageError
		if !errors.As(err, &noCov) {
			// resolve only reports coverage gaps; anything else is a bug
			tracer().Errorf("font resolution failed: %v", err)
		}
		assignments = substituteFallback(assignments, m, f.Name, &anomalies)
	}
	doc := Document{
		Field:       f.Name,
		Text:        text,
		Runs:        runs,
		Assignments: assignments,
		Graphemes:   grapheme.StringFromString(text).Len(),
	}
	tracer().Debugf("prepared field %q: %d runs, %d anomalies", f.Name, len(runs), len(anomalies))
	return doc, anomalies
}

// substituteFallback fills the assignments Resolve left open. The
// manifest's Unknown-script family is the first choice; failing that,
// the embedded fallback font keeps the text visible.
func substituteFallback(assignments []resolve.FontAssignment, m *manifest.Manifest,
	fieldName string, anomalies *[]Anomaly) []resolve.FontAssignment {
	//
	defaultFamily := ""
	if fams := m.FamiliesFor(script.Unknown); len(fams) > 0 {
		defaultFamily = fams[0]
	} else {
		defaultFamily = locate.FallbackFont("").Fontname
	}
	for i := range assignments {
		if assignments[i].Family != "" {
			continue
		}
		assignments[i].Family = defaultFamily
		tracer().Infof("field %q: substituting family %q for uncovered script %s",
			fieldName, defaultFamily, assignments[i].Run.Script)
		*anomalies = append(*anomalies, Anomaly{
			Kind:   "FallbackFamilySubstituted",
			Field:  fieldName,
			Offset: assignments[i].Run.Start,
		})
	}
	return assignments
}

// Prepare runs the pipeline over an ordered list of fields and collects
// the manifest-level report.
func Prepare(fields []Field, m *manifest.Manifest) ([]Document, Report) {
	docs := make([]Document, 0, len(fields))
	var report Report
	for _, f := range fields {
		doc, anomalies := PrepareField(f, m)
		docs = append(docs, doc)
		report.Anomalies = append(report.Anomalies, anomalies...)
		report.addFamilies(resolve.UsedFamilies(doc.Assignments))
	}
	report.sortFamilies()
	return docs, report
}
