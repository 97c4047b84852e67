// wordbook_test.go - Unit Tests fuer die Wortlisten-Verwaltung
//
// Testet Parse, Load, Resolve und Scan inklusive der Sentinel-Fehler.
package wordbook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse testet Trimmen, Leerzeilen und BOM-Behandlung
func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"einfache Liste", "apple\nbanana\ncherry\n", []string{"apple", "banana", "cherry"}},
		{"Whitespace wird getrimmt", "  apple  \n\tbanana\t\n", []string{"apple", "banana"}},
		{"Leerzeilen werden uebersprungen", "apple\n\n\nbanana\n", []string{"apple", "banana"}},
		{"BOM wird entfernt", "\ufeffapple\nbanana", []string{"apple", "banana"}},
		{"CRLF-Zeilenenden", "apple\r\nbanana\r\n", []string{"apple", "banana"}},
		{"keine Schlusszeile", "apple\nbanana", []string{"apple", "banana"}},
		{"Mehrwort-Eintraege bleiben erhalten", "ice age\nNew York\n", []string{"ice age", "New York"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, words)
		})
	}
}

// TestParseEmpty testet den Sentinel fuer Listen ohne Woerter
func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", "\n\n", "   \n\t\n"} {
		_, err := Parse(strings.NewReader(input))
		require.ErrorIs(t, err, ErrBookEmpty)
	}
}

// TestLoad testet das Laden einer Datei samt Namensableitung
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wordbook1.txt")
	require.NoError(t, os.WriteFile(path, []byte("apple\nbanana\n"), 0o644))

	book, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "wordbook1", book.Name)
	assert.Equal(t, path, book.Path)
	assert.Equal(t, []string{"apple", "banana"}, book.Words)
}

// TestLoadNotFound testet den Sentinel fuer fehlende Dateien
func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "wordbook9.txt"))
	require.ErrorIs(t, err, ErrBookNotFound)
	assert.Contains(t, err.Error(), "wordbook9.txt")
}

// TestLoadEmptyFile testet den Sentinel fuer Dateien ohne Woerter
func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordbook2.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n\n"), 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrBookEmpty)
}

// TestResolve testet Nummern-Referenzen und Pfad-Durchreichung
func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		ref  string
		want string
	}{
		{"Nummer", "books", "2", filepath.Join("books", "wordbook2.txt")},
		{"Nummer mit fuehrender Null", "books", "02", filepath.Join("books", "wordbook02.txt")},
		{"relativer Pfad", "books", "meine-liste.txt", "meine-liste.txt"},
		{"Name ohne Endung", "books", "liste", "liste"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.dir, tt.ref))
		})
	}
}

// TestScan testet das parallele Einsammeln aller Wortlisten
func TestScan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wordbook1.txt"), []byte("apple\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wordbook2.txt"), []byte("dog\ncat\n"), 0o644))
	// leere Listen tauchen im Ergebnis nicht auf
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wordbook3.txt"), []byte("\n"), 0o644))
	// fremde Dateien werden nicht angefasst
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x\n"), 0o644))

	books, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, books, 2)

	assert.Equal(t, "wordbook1", books[0].Name)
	assert.Equal(t, []string{"apple"}, books[0].Words)
	assert.Equal(t, "wordbook2", books[1].Name)
	assert.Equal(t, []string{"dog", "cat"}, books[1].Words)
}

// TestScanMissingDir testet den Fehler fuer fehlende Verzeichnisse
func TestScanMissingDir(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "gibtsnicht"))
	require.Error(t, err)
}

// TestScanEmptyDir testet dass ein Verzeichnis ohne Listen kein Fehler ist
func TestScanEmptyDir(t *testing.T) {
	books, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, books)
}
