// buffer.go - Editier-Puffer mit Live-Echo
//
// Der Puffer haelt die bisher getippten Runen des aktuellen Worts.
// Jede Aenderung schreibt ihr Echo sofort auf den Ausgabe-Writer:
// Add echot die Rune, Remove radiert spaltenweise mit
// Backspace-Space-Backspace. Gepuffert wird nichts, das Echo bleibt
// synchron zum Tastendruck.

package readword

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/v2/lists/arraylist"
	"github.com/mattn/go-runewidth"
)

// eraseChar radiert genau eine Bildschirmspalte
const eraseChar = "\b \b"

// Buffer ist der Editier-Puffer fuer ein einzelnes Wort
type Buffer struct {
	Buf *arraylist.List[rune]
	out io.Writer
}

// NewBuffer erstellt einen leeren Puffer, dessen Echo auf out schreibt
func NewBuffer(out io.Writer) *Buffer {
	return &Buffer{
		Buf: arraylist.New[rune](),
		out: out,
	}
}

// Add haengt r an den Puffer an und echot die Rune
func (b *Buffer) Add(r rune) {
	b.Buf.Add(r)
	fmt.Fprintf(b.out, "%c", r)
}

// Remove entfernt die zuletzt angefuegte Rune und radiert ihr Echo.
// Bei leerem Puffer passiert nichts, auch kein Echo.
func (b *Buffer) Remove() {
	if b.Buf.Empty() {
		return
	}

	last := b.Buf.Size() - 1
	r, _ := b.Buf.Get(last)
	b.Buf.Remove(last)

	// breite Runen belegen mehrere Spalten
	fmt.Fprint(b.out, strings.Repeat(eraseChar, runewidth.RuneWidth(r)))
}

// Size gibt die Anzahl der Runen im Puffer zurueck
func (b *Buffer) Size() int {
	return b.Buf.Size()
}

// IsEmpty meldet, ob der Puffer leer ist
func (b *Buffer) IsEmpty() bool {
	return b.Buf.Empty()
}

// String setzt den Puffer-Inhalt unveraendert zum eingereichten Wort
// zusammen
func (b *Buffer) String() string {
	var s string
	for cnt := range b.Buf.Size() {
		r, _ := b.Buf.Get(cnt)
		s += string(r)
	}
	return s
}
