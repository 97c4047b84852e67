// Package wordbook - Laden und Auffinden von Wortlisten
//
// Eine Wortliste ist eine UTF-8-Textdatei mit einer Vokabel pro Zeile.
// Leerzeilen werden uebersprungen, Whitespace an den Raendern entfernt,
// ein BOM wird toleriert. Fehlende und leere Listen sind unterscheidbare
// Fehler, damit der Drill gar nicht erst startet.
//
// Hauptkomponenten:
// - Book: geladene Wortliste mit Name, Pfad und Woertern
// - Load/Parse: Einlesen einer Wortliste
// - Resolve: uebersetzt Nummern-Referenzen in Dateipfade
// - Scan: findet alle Wortlisten eines Verzeichnisses

package wordbook

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Sentinel-Fehler der Wortlisten-Verwaltung
var (
	ErrBookNotFound = errors.New("wordbook not found")
	ErrBookEmpty    = errors.New("wordbook contains no words")
)

// Book ist eine geladene Wortliste. Nach dem Laden wird sie nur noch
// gelesen; die Reihenfolge der Woerter ist die Dateireihenfolge.
type Book struct {
	Name  string
	Path  string
	Words []string
}

// Parse liest Woerter aus r: eine Vokabel pro Zeile, getrimmt,
// Leerzeilen uebersprungen. Ein UTF-8 BOM am Anfang wird entfernt.
func Parse(r io.Reader) ([]string, error) {
	tr := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	scanner := bufio.NewScanner(transform.NewReader(r, tr))

	var words []string
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(words) == 0 {
		return nil, ErrBookEmpty
	}

	return words, nil
}

// Load liest die Wortliste unter path. Eine fehlende Datei meldet
// ErrBookNotFound, eine Datei ohne Woerter ErrBookEmpty, beide mit
// dem Pfad im Fehlertext.
func Load(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrBookNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	words, err := Parse(f)
	if err != nil {
		if errors.Is(err, ErrBookEmpty) {
			return nil, fmt.Errorf("%w: %s", ErrBookEmpty, path)
		}
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Book{Name: name, Path: path, Words: words}, nil
}

// Resolve uebersetzt eine Buch-Referenz in einen Dateipfad.
// Eine reine Zahl n meint wordbook{n}.txt im Verzeichnis dir,
// alles andere wird unveraendert als Pfad uebernommen.
func Resolve(dir, ref string) string {
	if _, err := strconv.Atoi(ref); err == nil {
		return filepath.Join(dir, fmt.Sprintf("wordbook%s.txt", ref))
	}
	return ref
}

// Scan laedt alle Wortlisten (wordbook*.txt) in dir. Die Dateien werden
// parallel geladen; leere Listen werden uebersprungen statt den ganzen
// Scan abzubrechen. Die Reihenfolge folgt den Dateinamen.
func Scan(dir string) ([]*Book, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}

	matches, err := filepath.Glob(filepath.Join(dir, "wordbook*.txt"))
	if err != nil {
		return nil, err
	}

	loaded := make([]*Book, len(matches))
	var g errgroup.Group
	for idx, path := range matches {
		g.Go(func() error {
			book, err := Load(path)
			if errors.Is(err, ErrBookEmpty) {
				return nil
			}
			if err != nil {
				return err
			}
			loaded[idx] = book
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var books []*Book
	for _, book := range loaded {
		if book != nil {
			books = append(books, book)
		}
	}

	return books, nil
}
