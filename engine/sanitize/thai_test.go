package sanitize

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/grapheme"
	"github.com/stretchr/testify/assert"
)

func TestThaiStackedMarksSurvive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	// three syllables with stacked tone marks and vowels
	s, anomalies := Clean("ก่ กู้ เก๋")
	assert.Equal(t, "ก่ กู้ เก๋", s)
	for _, a := range anomalies {
		assert.NotEqual(t, OrphanMarkDropped, a.Kind)
	}
	assert.Empty(t, anomalies)
}

func TestThaiSaraAmRecomposition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	// nikhahit + sara aa decomposition of น้ำ ("water")
	s, anomalies := Clean("น้ํา")
	assert.Equal(t, "น้ำ", s)
	assert.Len(t, anomalies, 1)
	assert.Equal(t, DecomposedMarkFixed, anomalies[0].Kind)
	//
	// the repaired syllable forms a single grapheme cluster
	grapheme.SetupGraphemeClasses()
	gstr := grapheme.StringFromString(s)
	assert.Equal(t, 1, gstr.Len())
}

func TestThaiToneBeforeVowelReordered(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	// tone mark typed before the above-vowel: ก + mai ek + sara ii
	s, anomalies := Clean("ก่ิ")
	assert.Equal(t, "กิ่", s)
	assert.Len(t, anomalies, 1)
	assert.Equal(t, DecomposedMarkFixed, anomalies[0].Kind)
}

func TestThaiOrphanMarkDropped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	s, anomalies := Clean("้ก")
	assert.Equal(t, "ก", s)
	assert.Len(t, anomalies, 1)
	assert.Equal(t, OrphanMarkDropped, anomalies[0].Kind)
	assert.Equal(t, "้", anomalies[0].Text)
	assert.Equal(t, 0, anomalies[0].Offset)
}

func TestThaiOrphanAfterSpaceDropped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	s, anomalies := Clean("ก่ ่ข")
	assert.Equal(t, "ก่ ข", s)
	assert.Len(t, anomalies, 1)
	assert.Equal(t, OrphanMarkDropped, anomalies[0].Kind)
}

func TestThaiDuplicateMarkRemoved(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	// mai tho twice on one base
	s, anomalies := Clean("ก้้")
	assert.Equal(t, "ก้", s)
	assert.Len(t, anomalies, 1)
	assert.Equal(t, DuplicateMarkRemoved, anomalies[0].Kind)
}

func TestThaiRepairLeavesOtherScriptsAlone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	in := "Wednesday เวลา 19:00 น."
	s, anomalies := Clean(in)
	assert.Equal(t, in, s)
	assert.Empty(t, anomalies)
}
