// Package readword - Hauptmodul fuer die Wort-Eingabe
//
// Dieses Paket implementiert die Einzeltasten-Worteingabe des Drills:
// Der erste Buchstabe des Zielworts wird als Starthilfe vorbelegt, Tab
// ergaenzt den jeweils naechsten richtigen Buchstaben, Backspace radiert,
// Enter reicht das Getippte unveraendert ein und Ctrl+C bricht die
// Sitzung ab.
//
// Hauptkomponenten:
// - Instance: Eingabeinstanz ueber Terminal und Ausgabe-Writer
// - New: Konstruktor, prueft den Raw-Mode sofort
// - ReadWord: liest genau einen Eingabeversuch fuer ein Zielwort

package readword

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// keyReader liefert klassifizierte Tastendruecke
type keyReader interface {
	ReadKey() (Key, error)
}

// Instance ist die Hauptstruktur fuer die Wort-Eingabe
type Instance struct {
	term *Terminal
	keys keyReader
	out  io.Writer
}

// New erstellt eine neue Eingabeinstanz auf Stdin und Stdout.
// Schlaegt mit ErrNotTerminal fehl, wenn keine Einzeltasten-Eingabe
// moeglich ist.
func New() (*Instance, error) {
	term, err := NewTerminal()
	if err != nil {
		return nil, err
	}

	return &Instance{
		term: term,
		keys: term,
		out:  os.Stdout,
	}, nil
}

// Close stellt den urspruenglichen Terminal-Zustand wieder her
func (i *Instance) Close() error {
	if i.term == nil {
		return nil
	}
	return i.term.Close()
}

// ReadWord liest genau einen Eingabeversuch fuer target.
// Der Prompt und der vorbelegte erste Buchstabe werden sofort ausgegeben.
// Rueckgabe ist das Eingereichte exakt wie getippt, ohne Trimmen; bei
// Ctrl+C ist der Fehler ErrInterrupt, Lesefehler kommen unveraendert durch.
func (i *Instance) ReadWord(prompt, target string) (string, error) {
	if target == "" {
		return "", errors.New("empty target word")
	}

	targetRunes := []rune(target)

	fmt.Fprint(i.out, prompt)

	buf := NewBuffer(i.out)
	// Starthilfe: der erste Buchstabe ist vorbelegt und sichtbar.
	// Er wird durch Tippen nicht ersetzt, nur durch Backspace entfernt.
	buf.Add(targetRunes[0])

	for {
		key, err := i.keys.ReadKey()
		if err != nil {
			return "", err
		}

		switch key.Kind {
		case KindRune:
			buf.Add(key.Rune)
		case KindBackspace:
			buf.Remove()
		case KindAssist:
			// ergaenzt stur den naechsten Buchstaben des Zielworts,
			// unabhaengig davon was bisher getippt wurde
			if buf.Size() < len(targetRunes) {
				buf.Add(targetRunes[buf.Size()])
			}
		case KindSubmit:
			fmt.Fprintln(i.out)
			return buf.String(), nil
		case KindInterrupt:
			return "", ErrInterrupt
		}
	}
}
