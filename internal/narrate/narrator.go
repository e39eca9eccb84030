// Package narrate turns story lines into output: a terminal writer with
// optional ANSI color, and an in-memory recorder.
package narrate

import (
	"fmt"
	"io"
	"sync"
)

// Tone classifies a line so a writer can style it.
type Tone int

const (
	ToneStory   Tone = iota // scene-setting prose
	ToneAction              // a combatant acting
	ToneSpeech              // something said aloud
	ToneVictory             // the outcome
	ToneWarning             // the story going wrong
)

// String returns the tone label.
func (t Tone) String() string {
	switch t {
	case ToneStory:
		return "story"
	case ToneAction:
		return "action"
	case ToneSpeech:
		return "speech"
	case ToneVictory:
		return "victory"
	case ToneWarning:
		return "warning"
	default:
		return "unknown"
	}
}

func (t Tone) color() string {
	switch t {
	case ToneAction:
		return Yellow
	case ToneSpeech:
		return Cyan
	case ToneVictory:
		return Bold + BrightYellow
	case ToneWarning:
		return BrightRed
	default:
		return White
	}
}

// Narrator receives narration lines.
type Narrator interface {
	Narrate(tone Tone, line string)
}

// Writer writes each line, newline-terminated, to an io.Writer.
// Empty lines are skipped.
type Writer struct {
	mu    sync.Mutex
	out   io.Writer
	color bool
	err   error
}

// NewWriter returns a Writer on out. When color is true lines are wrapped in
// ANSI codes chosen by tone.
//
// Precondition: out must be non-nil.
func NewWriter(out io.Writer, color bool) *Writer {
	return &Writer{out: out, color: color}
}

// Narrate writes line. The first write error is kept and later lines dropped.
func (w *Writer) Narrate(tone Tone, line string) {
	if line == "" {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return
	}
	if w.color {
		line = Colorize(tone.color(), line)
	}
	if _, err := fmt.Fprintln(w.out, line); err != nil {
		w.err = fmt.Errorf("writing narration: %w", err)
	}
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// Line is one recorded narration entry.
type Line struct {
	Tone Tone
	Text string
}

// Recorder keeps every non-empty line in memory.
type Recorder struct {
	mu    sync.Mutex
	lines []Line
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Narrate records line.
func (r *Recorder) Narrate(tone Tone, line string) {
	if line == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, Line{Tone: tone, Text: line})
}

// Lines returns a copy of the recorded entries.
func (r *Recorder) Lines() []Line {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]Line, len(r.lines))
	copy(cp, r.lines)
	return cp
}

// Texts returns the recorded text in order.
func (r *Recorder) Texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	for i, l := range r.lines {
		out[i] = l.Text
	}
	return out
}

// Tee fans each line out to every narrator in order.
type Tee []Narrator

// Narrate forwards line to each narrator.
func (t Tee) Narrate(tone Tone, line string) {
	for _, n := range t {
		n.Narrate(tone, line)
	}
}
