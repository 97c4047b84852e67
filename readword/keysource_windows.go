// keysource_windows.go - Einzeltasten-Quelle fuer die Windows-Console
//
// Der Console-Mode wird einmal beim Erstellen gesichert und umgeschaltet
// und erst in close wiederhergestellt. Gelesen wird byteweise; Lead-Bytes
// von Funktions- und Pfeiltasten (0x00, 0xE0) verwerfen auch ihr Folgebyte,
// damit kein entstelltes Zeichen im Puffer landet.

//go:build windows

package readword

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// consoleSource liest einzelne Bytes von der Windows-Console
type consoleSource struct {
	fd    uintptr
	state *State
}

// newKeySource erstellt die Console-Tastenquelle und schaltet den
// Console-Mode fuer die Dauer der Sitzung um
func newKeySource() (keySource, error) {
	fd := os.Stdin.Fd()
	if !term.IsTerminal(int(fd)) {
		return nil, ErrNotTerminal
	}

	state, err := SetRawMode(fd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotTerminal, err)
	}

	return &consoleSource{fd: fd, state: state}, nil
}

// readKey liest genau einen Tastendruck und klassifiziert ihn
func (s *consoleSource) readKey() (Key, error) {
	b, err := s.readByte()
	if err != nil {
		return Key{}, err
	}

	key, consumeNext := classifyByte(b)
	if consumeNext {
		// Tasten-Code der Funktionstaste lesen und verwerfen
		if _, err := s.readByte(); err != nil {
			return Key{}, err
		}
	}

	return key, nil
}

// readByte liest genau ein Byte von Stdin
func (s *consoleSource) readByte() (byte, error) {
	var buf [1]byte
	if _, err := os.Stdin.Read(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// close stellt den gesicherten Console-Mode wieder her
func (s *consoleSource) close() error {
	return UnsetRawMode(s.fd, s.state)
}
