package scriptrun

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textprep/core/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundaryHangulLatin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	text := "NMIXX(엔믹스) Blue Valentine"
	out, runs := InsertBoundaries(text, Segment(text))
	assert.Equal(t, "NMIXX( 엔믹스 ) Blue Valentine", out)
	checkInvariants(t, out, runs)
}

func TestBoundaryEmojiLatin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	text := "😱😨Roblox"
	out, runs := InsertBoundaries(text, Segment(text))
	assert.Equal(t, "😱😨 Roblox", out)
	require.Len(t, runs, 2)
	assert.Equal(t, script.EmojiPictographic, runs[0].Script)
	assert.Equal(t, script.Latin, runs[1].Script)
	checkInvariants(t, out, runs)
}

func TestBoundaryLatinOnlyUntouched(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	text := "plain (Latin) text!"
	out, runs := InsertBoundaries(text, Segment(text))
	assert.Equal(t, text, out)
	checkInvariants(t, out, runs)
}

func TestBoundaryArabicLatinUntouched(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	// neither Arabic nor Latin is shaping-sensitive in the boundary sense
	text := "abcمرحبا"
	out, _ := InsertBoundaries(text, Segment(text))
	assert.Equal(t, text, out)
}

func TestBoundaryExistingSpaceRespected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	text := "Roblox 테스트"
	out, _ := InsertBoundaries(text, Segment(text))
	assert.Equal(t, text, out)
}

func TestBoundaryIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	inputs := []string{
		"NMIXX(엔믹스) Blue Valentine",
		"😱😨Roblox",
		"ทดสอบtest테스트",
		"漢字とtext",
		"plain",
		"",
	}
	for _, text := range inputs {
		once, onceRuns := InsertBoundaries(text, Segment(text))
		twice, twiceRuns := InsertBoundaries(once, onceRuns)
		assert.Equal(t, once, twice, "input %q", text)
		assert.Equal(t, onceRuns, twiceRuns, "input %q", text)
	}
}

// At every shaping-incompatible transition the byte before the second
// run must be a plain space.
func TestBoundarySafetyProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	inputs := []string{
		"NMIXX(엔믹스) Blue Valentine",
		"😱😨Roblox",
		"ทดสอบtest테스트 测试",
		"ก่กู้… and 漢字",
	}
	for _, text := range inputs {
		out, runs := InsertBoundaries(text, Segment(text))
		for i := 1; i < len(runs); i++ {
			a, b := runs[i-1], runs[i]
			if a.Script == b.Script {
				continue
			}
			if !a.Script.ShapingSensitive() && !b.Script.ShapingSensitive() {
				continue
			}
			assert.Equal(t, byte(' '), out[b.Start-1],
				"input %q: no space before run %v", text, b)
		}
	}
}
