// cmd_drill.go - Drill Command fuer das Abfragen einer Wortliste
// Hauptfunktionen: DrillHandler, runDrill
package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/spellbee/spellbee/envconfig"
	"github.com/spellbee/spellbee/logutil"
	"github.com/spellbee/spellbee/readword"
	"github.com/spellbee/spellbee/wordbook"
)

// wordReader liest ein Wort zeichenweise im Rohmodus
type wordReader interface {
	ReadWord(prompt, target string) (string, error)
}

// wordResult haelt das Ergebnis eines abgefragten Worts
type wordResult struct {
	Word     string
	Attempts int
}

// DrillHandler - Fragt alle Woerter einer Wortliste ab
func DrillHandler(cmd *cobra.Command, args []string) error {
	slog.Debug("session config", "id", uuid.New().String(), "env", envconfig.Values())

	ref := ""
	if len(args) > 0 {
		ref = args[0]
	}

	book, err := openBook(cmd, ref)
	if err != nil {
		return err
	}

	reader, err := readword.New()
	if err != nil {
		return err
	}
	defer reader.Close()

	printStartBanner(cmd.OutOrStdout(), book)

	start := time.Now()
	results, err := runDrill(cmd.OutOrStdout(), reader, book.Words)
	switch {
	case errors.Is(err, io.EOF):
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	case err != nil:
		fmt.Fprintln(cmd.OutOrStdout())
		return err
	}

	printSummary(cmd.OutOrStdout(), results, time.Since(start))
	return nil
}

// openBook loest die Referenz auf und laedt die Wortliste
// Ohne Argument wird interaktiv nach der Nummer gefragt
func openBook(cmd *cobra.Command, ref string) (*wordbook.Book, error) {
	if ref == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("no wordbook given; pass a number or path as argument")
		}

		fmt.Fprint(cmd.OutOrStdout(), "Enter book number (e.g. 2 for wordbook2.txt): ")
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			return nil, io.EOF
		}
		ref = strings.TrimSpace(scanner.Text())
	}

	path := wordbook.Resolve(envconfig.Books(), ref)
	slog.Debug("loading wordbook", "ref", ref, "path", path)

	book, err := wordbook.Load(path)
	if errors.Is(err, wordbook.ErrBookNotFound) {
		return nil, fmt.Errorf("%w; create the file with one word per line, or run 'spellbee list'", err)
	}
	return book, err
}

// runDrill fragt die Woerter der Reihe nach ab
// Falsche Eingaben wiederholen das aktuelle Wort
func runDrill(out io.Writer, reader wordReader, words []string) ([]wordResult, error) {
	results := make([]wordResult, 0, len(words))

	for i, word := range words {
		prompt := fmt.Sprintf("[%d/%d] complete: ", i+1, len(words))
		attempts := 0

		for {
			attempts++
			input, err := reader.ReadWord(prompt, word)
			if err != nil {
				return results, err
			}

			logutil.Trace("attempt", "word", word, "input", input, "attempt", attempts)

			if input == word {
				printCorrect(out)
				break
			}

			printWrong(out, input, word)
		}

		results = append(results, wordResult{Word: word, Attempts: attempts})
	}

	return results, nil
}

// newDrillCmd - Erstellt den drill Command
func newDrillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drill [BOOK]",
		Short: "Drill a wordbook letter by letter",
		Args:  cobra.MaximumNArgs(1),
		RunE:  DrillHandler,
	}
}
