// cmd.go - Haupt-CLI Setup und Root Command
// Hauptfunktionen: NewCLI, appendEnvDocs
package cmd

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/containerd/console"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/spellbee/spellbee/envconfig"
	"github.com/spellbee/spellbee/logutil"
	"github.com/spellbee/spellbee/version"
)

// appendEnvDocs - Fuegt Umgebungsvariablen-Dokumentation zum Command hinzu
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// versionHandler - Gibt die Spellbee-Version aus
func versionHandler(_ *cobra.Command, _ []string) {
	fmt.Printf("spellbee version is %s\n", version.Version)
}

// newVersionCmd - Erstellt den version Command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run:   versionHandler,
	}
}

// NewCLI - Erstellt das Haupt-CLI mit allen Commands
func NewCLI() *cobra.Command {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cobra.EnableCommandSorting = false

	slog.SetDefault(logutil.NewLogger(os.Stderr, envconfig.LogLevel()))

	if envconfig.NoColor() {
		color.NoColor = true
	}

	if runtime.GOOS == "windows" && term.IsTerminal(int(os.Stdout.Fd())) {
		console.ConsoleFromFile(os.Stdin) //nolint:errcheck
	}

	rootCmd := &cobra.Command{
		Use:           "spellbee",
		Short:         "Interactive word spelling trainer",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Run: func(cmd *cobra.Command, args []string) {
			if version, _ := cmd.Flags().GetBool("version"); version {
				versionHandler(cmd, args)
				return
			}

			cmd.Print(cmd.UsageString())
		},
	}

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	// Commands erstellen
	drillCmd := newDrillCmd()
	listCmd := newListCmd()
	versionCmd := newVersionCmd()

	// Environment-Dokumentation hinzufuegen
	envVars := envconfig.AsMap()

	for _, cmd := range []*cobra.Command{drillCmd, listCmd} {
		switch cmd {
		case drillCmd:
			appendEnvDocs(cmd, []envconfig.EnvVar{
				envVars["SPELLBEE_BOOKS"],
				envVars["SPELLBEE_DEBUG"],
				envVars["SPELLBEE_NOCOLOR"],
			})
		default:
			appendEnvDocs(cmd, []envconfig.EnvVar{envVars["SPELLBEE_BOOKS"]})
		}
	}

	rootCmd.AddCommand(
		drillCmd,
		listCmd,
		versionCmd,
	)

	return rootCmd
}
