// keysource_posix.go - Einzeltasten-Quelle fuer POSIX-Terminals
//
// Pro Tastendruck werden die Terminal-Attribute gesichert, das Terminal in
// den Raw-Mode geschaltet, genau ein Zeichen gelesen und die Attribute vor
// der Rueckkehr wiederhergestellt. Die Wiederherstellung laeuft als defer
// und greift damit auch bei Lesefehlern und Panics.

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package readword

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/term"
)

// termSource liest einzelne Runen von Stdin im scoped Raw-Mode
type termSource struct {
	fd uintptr
}

// newKeySource erstellt die POSIX-Tastenquelle. Der Raw-Mode wird einmal
// probeweise gesetzt und sofort wieder freigegeben, damit ein fehlendes
// Terminal beim Start auffaellt und nicht erst beim ersten Tastendruck.
func newKeySource() (keySource, error) {
	fd := os.Stdin.Fd()
	if !term.IsTerminal(int(fd)) {
		return nil, ErrNotTerminal
	}

	termios, err := SetRawMode(fd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotTerminal, err)
	}
	if err := UnsetRawMode(fd, termios); err != nil {
		return nil, err
	}

	return &termSource{fd: fd}, nil
}

// readKey liest genau einen Tastendruck und klassifiziert ihn
func (s *termSource) readKey() (Key, error) {
	r, err := s.readRune()
	if err != nil {
		return Key{}, err
	}

	// nicht dekodierbare Bytes verwerfen statt das Ersatzzeichen zu tippen
	if r == utf8.RuneError {
		return Key{Kind: KindIgnored}, nil
	}

	return classify(r), nil
}

// readRune liest eine einzelne UTF-8-Rune innerhalb eines Raw-Mode-Scopes.
// Folgebytes einer Mehrbyte-Rune stammen vom selben Tastendruck und stehen
// unmittelbar an.
func (s *termSource) readRune() (rune, error) {
	termios, err := SetRawMode(s.fd)
	if err != nil {
		return 0, err
	}
	defer UnsetRawMode(s.fd, termios) //nolint:errcheck

	var buf [utf8.UTFMax]byte
	var n int
	for {
		if _, err := os.Stdin.Read(buf[n : n+1]); err != nil {
			return 0, err
		}
		n++
		if utf8.FullRune(buf[:n]) || n == len(buf) {
			break
		}
	}

	r, _ := utf8.DecodeRune(buf[:n])
	return r, nil
}

// close gibt die Tastenquelle frei; im per-Read-Scope ist nichts zu tun
func (s *termSource) close() error {
	return nil
}
