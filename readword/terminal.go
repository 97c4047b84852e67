// Package readword - Terminal-Modul
//
// Dieses Modul enthaelt das Terminal als Quelle klassifizierter
// Tastendruecke sowie die Klassifikationsregeln selbst.
//
// Hauptkomponenten:
// - keySource: Interface der plattformspezifischen Tastenquelle
// - Terminal: oeffentliche Huelle, prueft den Raw-Mode beim Erstellen
// - classify/classifyByte: Zuordnung roher Eingaben zu Keys

package readword

import "unicode"

// keySource ist die plattformspezifische Quelle einzelner Tastendruecke.
// Es existieren genau zwei Varianten: termSource fuer POSIX-Terminals und
// consoleSource fuer die Windows-Console. Die Auswahl faellt einmal beim
// Prozessstart ueber newKeySource.
type keySource interface {
	readKey() (Key, error)
	close() error
}

// Terminal liefert klassifizierte Tastendruecke von Stdin
type Terminal struct {
	src keySource
}

// NewTerminal erstellt eine Terminal-Instanz und prueft sofort, ob der
// Raw-Mode verfuegbar ist. Ohne interaktives Terminal schlaegt der Aufruf
// mit ErrNotTerminal fehl; ein stiller Rueckfall auf zeilenweise Eingabe
// findet nicht statt.
func NewTerminal() (*Terminal, error) {
	src, err := newKeySource()
	if err != nil {
		return nil, err
	}

	return &Terminal{src: src}, nil
}

// ReadKey blockiert bis zum naechsten Tastendruck und klassifiziert ihn
func (t *Terminal) ReadKey() (Key, error) {
	return t.src.readKey()
}

// Close stellt den urspruenglichen Terminal-Zustand wieder her
func (t *Terminal) Close() error {
	return t.src.close()
}

// classify ordnet eine gelesene Rune einem Key zu.
// Backspace akzeptiert beide Varianten: den Console-Code (0x08) und den
// POSIX-Erase-Code (0x7F). Alles Unbekannte wird KindIgnored, nie ein Fehler.
func classify(r rune) Key {
	switch r {
	case CharEnter, CharCtrlJ:
		return Key{Kind: KindSubmit}
	case CharTab:
		return Key{Kind: KindAssist}
	case CharCtrlH, CharBackspace:
		return Key{Kind: KindBackspace}
	case CharInterrupt:
		return Key{Kind: KindInterrupt}
	}

	if unicode.IsPrint(r) {
		return Key{Kind: KindRune, Rune: r}
	}

	return Key{Kind: KindIgnored}
}

// classifyByte ordnet ein einzelnes Console-Byte einem Key zu.
// consumeNext meldet, ob das Byte ein Funktionstasten-Lead ist, dessen
// Folgebyte gelesen und verworfen werden muss. Einzelne Bytes ab 0x80
// sind allein nicht dekodierbar und werden verworfen.
func classifyByte(b byte) (key Key, consumeNext bool) {
	switch {
	case b == charFuncLead || b == charExtLead:
		return Key{Kind: KindIgnored}, true
	case b > 0x7f:
		return Key{Kind: KindIgnored}, false
	}

	return classify(rune(b)), false
}
