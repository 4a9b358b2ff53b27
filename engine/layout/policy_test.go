package layout

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textprep/core/dimen"
	"github.com/npillmayer/textprep/core/script"
	"github.com/stretchr/testify/assert"
)

func TestPolicyStackingScripts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	for _, tag := range []script.Tag{script.Thai, script.Arabic, script.Hebrew} {
		p := PolicyFor(tag)
		assert.GreaterOrEqual(t, p.LineHeightMultiplier, 1.35, "script %s", tag)
		assert.Equal(t, dimen.Zero, p.LetterSpacing, "script %s", tag)
		assert.False(t, p.HyphenationAllowed, "script %s", tag)
	}
}

func TestPolicyNoHyphenationWithoutWordSpaces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	for _, tag := range []script.Tag{script.Thai, script.CJKUnified, script.Hangul} {
		assert.False(t, PolicyFor(tag).HyphenationAllowed, "script %s", tag)
	}
	assert.True(t, PolicyFor(script.Latin).HyphenationAllowed)
}

func TestPolicyDirection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	assert.Equal(t, RightToLeft, PolicyFor(script.Arabic).Direction)
	assert.Equal(t, RightToLeft, PolicyFor(script.Hebrew).Direction)
	assert.Equal(t, LeftToRight, PolicyFor(script.Thai).Direction)
	assert.Equal(t, LeftToRight, PolicyFor(script.Latin).Direction)
}

func TestPolicyTotal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	for tag := script.Unknown; tag <= script.SymbolPunctuation; tag++ {
		p := PolicyFor(tag)
		assert.Greater(t, p.LineHeightMultiplier, 1.0, "script %s", tag)
	}
}
