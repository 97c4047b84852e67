// display.go - Konsolen-Ausgabe fuer Banner, Feedback und Zusammenfassung
package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/spellbee/spellbee/wordbook"
)

// maxHintDistance ist die Levenshtein-Grenze fuer den Naehe-Hinweis
const maxHintDistance = 2

// printStartBanner zeigt Kopfzeile, Bedienhinweis und Wortanzahl an
func printStartBanner(w io.Writer, book *wordbook.Book) {
	fmt.Fprintln(w, "=== Spellbee ===")
	fmt.Fprintln(w, "Tip: press <Tab> to reveal the next letter.")
	fmt.Fprintf(w, "Starting drill '%s': %d words.\n", book.Name, len(book.Words))
	fmt.Fprintln(w, strings.Repeat("-", 30))
}

// printCorrect zeigt die Richtig-Meldung an
func printCorrect(w io.Writer) {
	fmt.Fprintln(w, color.GreenString("Correct!"))
}

// wrongLine baut die Falsch-Meldung samt optionalem Naehe-Hinweis
func wrongLine(input, target string) string {
	line := fmt.Sprintf("you typed: %q, try again.", input)
	if d := levenshtein.ComputeDistance(input, target); d <= maxHintDistance {
		line += fmt.Sprintf(" (close: off by %d)", d)
	}
	return line
}

// printWrong zeigt die Falsch-Meldung an
func printWrong(w io.Writer, input, target string) {
	fmt.Fprintf(w, "%s %s\n", color.RedString("Wrong."), wrongLine(input, target))
}

// summaryRows baut die Tabellenzeilen der Zusammenfassung
func summaryRows(results []wordResult) [][]string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.Word, strconv.Itoa(r.Attempts)})
	}
	return rows
}

// printSummary zeigt die Abschluss-Tabelle samt Gesamtzahlen an
func printSummary(w io.Writer, results []wordResult, elapsed time.Duration) {
	fmt.Fprintln(w, strings.Repeat("=", 30))
	fmt.Fprintln(w, "Congratulations! You finished the whole book.")

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"WORD", "ATTEMPTS"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(summaryRows(results))
	table.Render()

	attempts := 0
	firstTry := 0
	for _, r := range results {
		attempts += r.Attempts
		if r.Attempts == 1 {
			firstTry++
		}
	}
	fmt.Fprintf(w, "%d words, %d attempts, %d on the first try in %s.\n",
		len(results), attempts, firstTry, elapsed.Round(time.Second))
}
