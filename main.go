// main.go - Einstiegspunkt fuer Spellbee
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spellbee/spellbee/cmd"
	"github.com/spellbee/spellbee/readword"
)

func main() {
	if err := cmd.NewCLI().ExecuteContext(context.Background()); err != nil {
		// Strg+C beendet mit dem ueblichen Shell-Status
		if errors.Is(err, readword.ErrInterrupt) {
			os.Exit(130)
		}

		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
