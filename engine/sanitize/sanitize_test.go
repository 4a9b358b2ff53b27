package sanitize

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestCleanPassesPlainText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	s, anomalies := Clean("NMIXX(엔믹스) Blue Valentine")
	assert.Equal(t, "NMIXX(엔믹스) Blue Valentine", s)
	assert.Empty(t, anomalies)
}

func TestCleanStripsBannedCharacters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	cases := []struct {
		in, want string
	}{
		{"a​b", "a b"},                  // zero-width space
		{"\uFEFFhello", " hello"},            // BOM
		{"soft­hyphen", "soft hyphen"},  // soft hyphen
		{"x‮y‬z", "x y z"},         // bidi override + PDF
		{"tab\there", "tab here"},            // C0 control
		{"crlf\r\nkeep", "crlf \nkeep"},      // \r banned, \n kept
		{"c1control", "c1 control"},    // C1 control
		{"iso⁦late⁩d", "iso late d"},
	}
	for _, c := range cases {
		s, anomalies := Clean(c.in)
		assert.Equal(t, c.want, s, "input %q", c.in)
		assert.NotEmpty(t, anomalies, "input %q", c.in)
		for _, a := range anomalies {
			assert.Equal(t, BannedCharacterStripped, a.Kind)
		}
	}
}

func TestCleanMapsSmartPunctuation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	s, _ := Clean("“quoted” ‘single’ a–b c—d")
	assert.Equal(t, `"quoted" 'single' a-b c-d`, s)
}

func TestCleanCollapsesSpaces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	s, _ := Clean("a  b​​ c")
	assert.Equal(t, "a b c", s)
}

func TestCleanNormalizesNFC(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	s, anomalies := Clean("Café") // decomposed é
	assert.Equal(t, "Café", s)
	assert.Empty(t, anomalies)
}

func TestCleanIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	inputs := []string{
		"",
		"plain ascii",
		"NMIXX(엔믹스) Blue Valentine",
		"😱😨Roblox",
		"ก่ กู้ เก๋",
		"น้ํา", // decomposed sara am with tone
		"a​‮  b“c",
		"שלום עולם مرحبا",
		"่orphan tone",
	}
	for _, in := range inputs {
		once, _ := Clean(in)
		twice, anomalies := Clean(once)
		assert.Equal(t, once, twice, "input %q", in)
		assert.Empty(t, anomalies, "second pass of %q must be clean", in)
	}
}

// Visible characters survive sanitization in order.
func TestCleanPreservesContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.text")
	defer teardown()
	//
	in := "The 멋진 title​ — with 😱 and ก่ กู้"
	s, _ := Clean(in)
	for _, want := range []string{"The", "멋진", "title", "with", "😱", "ก่", "กู้"} {
		assert.Contains(t, s, want)
	}
}
