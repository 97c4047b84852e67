// cmd_list.go - List Command fuer verfuegbare Wortlisten
// Hauptfunktionen: ListHandler
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/spellbee/spellbee/envconfig"
	"github.com/spellbee/spellbee/wordbook"
)

// ListHandler - Listet alle Wortlisten im Books-Verzeichnis auf
func ListHandler(cmd *cobra.Command, args []string) error {
	books, err := wordbook.Scan(envconfig.Books())
	if err != nil {
		return err
	}

	var data [][]string

	for _, b := range books {
		if len(args) == 0 || strings.HasPrefix(strings.ToLower(b.Name), strings.ToLower(args[0])) {
			data = append(data, []string{b.Name, strconv.Itoa(len(b.Words)), b.Path})
		}
	}

	if len(data) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No wordbooks found. Create wordbook1.txt with one word per line.")
		return nil
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"NAME", "WORDS", "PATH"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}

// newListCmd - Erstellt den list Command
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List available wordbooks",
		RunE:    ListHandler,
	}
}
