package narrate

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestColorize(t *testing.T) {
	assert.Equal(t, "\033[31mdanger\033[0m", Colorize(Red, "danger"))
}

func TestColorf(t *testing.T) {
	assert.Equal(t, "\033[32mhealth: 42\033[0m", Colorf(Green, "health: %d", 42))
}

func TestStripANSI(t *testing.T) {
	input := "\033[31mred\033[0m normal \033[1m\033[32mbold green\033[0m"
	assert.Equal(t, "red normal bold green", StripANSI(input))
	assert.Equal(t, "", StripANSI(""))
	assert.Equal(t, "plain", StripANSI("plain"))
}

// Property: StripANSI(Colorize(color, text)) == text.
func TestPropertyStripANSIInversesColorize(t *testing.T) {
	colors := []string{Red, Green, Yellow, Cyan, White, Bold, Dim, BrightYellow, BrightRed}
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-zA-Z0-9 !,.']{0,50}`).Draw(t, "text")
		color := rapid.SampledFrom(colors).Draw(t, "color")
		assert.Equal(t, text, StripANSI(Colorize(color, text)))
	})
}

func TestWriter_Plain(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, false)
	w.Narrate(ToneStory, "Our adventure has begun..")
	w.Narrate(ToneAction, "")
	w.Narrate(ToneAction, "Primus is distracted!")
	assert.Equal(t, "Our adventure has begun..\nPrimus is distracted!\n", buf.String())
	assert.NoError(t, w.Err())
}

func TestWriter_Color(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)
	w.Narrate(ToneAction, "Pixel casts a spell on Primus!")
	assert.Equal(t, Yellow+"Pixel casts a spell on Primus!"+Reset+"\n", buf.String())
	assert.Equal(t, "Pixel casts a spell on Primus!\n", StripANSI(buf.String()))
}

type failingWriter struct{ calls int }

func (f *failingWriter) Write([]byte) (int, error) {
	f.calls++
	return 0, errors.New("disk full")
}

func TestWriter_KeepsFirstError(t *testing.T) {
	fw := &failingWriter{}
	w := NewWriter(fw, false)
	w.Narrate(ToneStory, "one")
	w.Narrate(ToneStory, "two")
	require.Error(t, w.Err())
	assert.Contains(t, w.Err().Error(), "disk full")
	assert.Equal(t, 1, fw.calls)
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.Narrate(ToneStory, "a")
	r.Narrate(ToneVictory, "")
	r.Narrate(ToneVictory, "b")
	assert.Equal(t, []string{"a", "b"}, r.Texts())
	assert.Equal(t, []Line{{ToneStory, "a"}, {ToneVictory, "b"}}, r.Lines())
}

func TestTee(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	Tee{a, b}.Narrate(ToneSpeech, "meow")
	assert.Equal(t, []string{"meow"}, a.Texts())
	assert.Equal(t, []string{"meow"}, b.Texts())
}

func TestToneString(t *testing.T) {
	assert.Equal(t, "victory", ToneVictory.String())
	assert.Equal(t, "unknown", Tone(99).String())
}
