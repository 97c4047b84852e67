// Package readword - Typen und Konstanten
//
// Dieses Modul enthaelt die Tastendruck-Ereignisse, die Steuerzeichen-Codes
// und die Sentinel-Fehler des Pakets.
//
// Hauptkomponenten:
// - KeyKind/Key: klassifizierte Tastendruck-Ereignisse
// - Char*: Codes der behandelten Steuerzeichen
// - ErrInterrupt, ErrNotTerminal: Sentinel-Fehler

package readword

import "errors"

// Codes der behandelten Steuerzeichen
const (
	CharNull      = 0
	CharInterrupt = 3
	CharCtrlH     = 8
	CharTab       = 9
	CharCtrlJ     = 10
	CharEnter     = 13
	CharSpace     = 32
	CharBackspace = 127
)

// Lead-Bytes der Windows-Console fuer Funktions- und Pfeiltasten.
// Auf das Lead-Byte folgt ein Byte mit dem Tasten-Code, das mit
// verworfen werden muss.
const (
	charFuncLead byte = 0x00
	charExtLead  byte = 0xe0
)

// ErrInterrupt signalisiert einen Benutzerabbruch via Ctrl+C
var ErrInterrupt = errors.New("Interrupt")

// ErrNotTerminal signalisiert, dass Stdin kein interaktives Terminal ist
// und daher keine Einzeltasten-Eingabe moeglich ist
var ErrNotTerminal = errors.New("stdin is not an interactive terminal")

// KeyKind klassifiziert einen einzelnen Tastendruck
type KeyKind int

const (
	// KindIgnored steht fuer verworfene Eingaben: Funktionstasten,
	// nicht dekodierbare Bytes und unbehandelte Steuerzeichen
	KindIgnored KeyKind = iota
	// KindRune ist ein druckbares Zeichen
	KindRune
	// KindBackspace loescht das zuletzt getippte Zeichen
	KindBackspace
	// KindAssist ergaenzt den naechsten richtigen Buchstaben (Tab)
	KindAssist
	// KindSubmit reicht die Eingabe ein (Enter)
	KindSubmit
	// KindInterrupt bricht den Drill ab (Ctrl+C)
	KindInterrupt
)

// String gibt den Namen der Klassifikation zurueck
func (k KeyKind) String() string {
	switch k {
	case KindRune:
		return "Rune"
	case KindBackspace:
		return "Backspace"
	case KindAssist:
		return "Assist"
	case KindSubmit:
		return "Submit"
	case KindInterrupt:
		return "Interrupt"
	default:
		return "Ignored"
	}
}

// Key ist das klassifizierte Ergebnis genau eines Tastendrucks.
// Rune ist nur fuer KindRune gesetzt. Keys sind Werte ohne Identitaet
// und werden pro Tastendruck neu erzeugt.
type Key struct {
	Kind KeyKind
	Rune rune
}
