// cmd_drill_test.go - Unit Tests fuer die Drill-Schleife
package cmd

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/spellbee/spellbee/readword"
)

// step ist eine vorbereitete Antwort des scriptReaders
type step struct {
	input string
	err   error
}

// scriptReader liefert vorbereitete Eingaben statt Tastatur
type scriptReader struct {
	steps   []step
	prompts []string
	pos     int
}

func (s *scriptReader) ReadWord(prompt, target string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.pos >= len(s.steps) {
		return "", io.EOF
	}
	st := s.steps[s.pos]
	s.pos++
	return st.input, st.err
}

// TestRunDrill testet Wiederholung und Versuchszaehlung
func TestRunDrill(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name  string
		words []string
		steps []step
		want  []wordResult
	}{
		{
			name:  "alles beim ersten Versuch",
			words: []string{"cat", "dog"},
			steps: []step{{input: "cat"}, {input: "dog"}},
			want:  []wordResult{{Word: "cat", Attempts: 1}, {Word: "dog", Attempts: 1}},
		},
		{
			name:  "falsche Eingabe wiederholt das Wort",
			words: []string{"hi"},
			steps: []step{{input: "hx"}, {input: "hi"}},
			want:  []wordResult{{Word: "hi", Attempts: 2}},
		},
		{
			name:  "Vergleich ohne Trimmen",
			words: []string{"cat"},
			steps: []step{{input: "cat "}, {input: "cat"}},
			want:  []wordResult{{Word: "cat", Attempts: 2}},
		},
		{
			name:  "mehrere Fehlversuche",
			words: []string{"bee"},
			steps: []step{{input: "b"}, {input: "be"}, {input: "bee"}},
			want:  []wordResult{{Word: "bee", Attempts: 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := runDrill(&out, &scriptReader{steps: tt.steps}, tt.words)
			if err != nil {
				t.Fatalf("Unerwarteter Fehler: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Ergebnis weicht ab (-want +got):\n%s", diff)
			}
		})
	}
}

// TestRunDrillPrompts testet die Prompt-Nummerierung
func TestRunDrillPrompts(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	reader := &scriptReader{steps: []step{{input: "cat"}, {input: "dog"}}}
	if _, err := runDrill(&out, reader, []string{"cat", "dog"}); err != nil {
		t.Fatalf("Unerwarteter Fehler: %v", err)
	}

	want := []string{"[1/2] complete: ", "[2/2] complete: "}
	if diff := cmp.Diff(want, reader.prompts); diff != "" {
		t.Errorf("Prompts weichen ab (-want +got):\n%s", diff)
	}
}

// TestRunDrillOutput testet Richtig/Falsch-Meldungen im Rohtext
func TestRunDrillOutput(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	reader := &scriptReader{steps: []step{{input: "hx"}, {input: "hi"}}}
	if _, err := runDrill(&out, reader, []string{"hi"}); err != nil {
		t.Fatalf("Unerwarteter Fehler: %v", err)
	}

	want := "Wrong. you typed: \"hx\", try again. (close: off by 1)\nCorrect!\n"
	if got := out.String(); got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

// TestRunDrillInterrupt testet den Abbruch mit Strg+C
func TestRunDrillInterrupt(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	reader := &scriptReader{steps: []step{{input: "cat"}, {err: readword.ErrInterrupt}}}
	results, err := runDrill(&out, reader, []string{"cat", "dog"})
	if !errors.Is(err, readword.ErrInterrupt) {
		t.Fatalf("Got %v, want %v", err, readword.ErrInterrupt)
	}

	// Das fertige Wort bleibt im Teilergebnis erhalten
	want := []wordResult{{Word: "cat", Attempts: 1}}
	if diff := cmp.Diff(want, results); diff != "" {
		t.Errorf("Teilergebnis weicht ab (-want +got):\n%s", diff)
	}
}

// TestRunDrillEOF testet das Ende der Eingabe
func TestRunDrillEOF(t *testing.T) {
	var out bytes.Buffer
	results, err := runDrill(&out, &scriptReader{}, []string{"cat"})
	if !errors.Is(err, io.EOF) {
		t.Fatalf("Got %v, want %v", err, io.EOF)
	}
	if len(results) != 0 {
		t.Errorf("Got %d Ergebnisse, want 0", len(results))
	}
}
