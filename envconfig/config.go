// config.go - Konfigurationsfunktionen fuer Spellbee
//
// Dieses Modul enthaelt:
// - Books: Gibt das Wortlisten-Verzeichnis zurueck (SPELLBEE_BOOKS)
// - LogLevel: Gibt Log-Level zurueck (SPELLBEE_DEBUG)
// - NoColor: Deaktiviert Farbausgabe (SPELLBEE_NOCOLOR)
// - Var/Bool/String: Utility-Getter
// - EnvVar/AsMap/Values: Export fuer Hilfetext und Debug-Log
package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Books gibt das Verzeichnis mit den Wortlisten zurueck
// Konfigurierbar via SPELLBEE_BOOKS
// Default: aktuelles Arbeitsverzeichnis
func Books() string {
	if s := Var("SPELLBEE_BOOKS"); s != "" {
		return s
	}

	return "."
}

// LogLevel gibt das Log-Level zurueck
// Konfigurierbar via SPELLBEE_DEBUG
// Werte: 0/false = INFO (Default), 1/true = DEBUG, 2 = TRACE
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("SPELLBEE_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

var (
	// NoColor deaktiviert die farbige Richtig/Falsch-Ausgabe
	NoColor = Bool("SPELLBEE_NOCOLOR")
)

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// BoolWithDefault gibt eine Funktion zurueck, die einen Bool mit Default-Wert liest
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// Bool gibt eine Funktion zurueck, die einen Bool liest (Default: false)
func Bool(k string) func() bool {
	withDefault := BoolWithDefault(k)
	return func() bool {
		return withDefault(false)
	}
}

// String gibt eine Funktion zurueck, die einen String liest
func String(s string) func() string {
	return func() string {
		return Var(s)
	}
}

// EnvVar repraesentiert eine Environment-Variable mit Metadaten
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap gibt alle Konfigurationen als Map zurueck
// Enthaelt Namen, aktuelle Werte und Beschreibungen
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"SPELLBEE_BOOKS":   {"SPELLBEE_BOOKS", Books(), "The path to the wordbook directory (default \".\")"},
		"SPELLBEE_DEBUG":   {"SPELLBEE_DEBUG", LogLevel(), "Show additional debug information (e.g. SPELLBEE_DEBUG=1)"},
		"SPELLBEE_NOCOLOR": {"SPELLBEE_NOCOLOR", NoColor(), "Disable colored feedback output"},
	}
}

// Values gibt alle Konfigurationswerte als String-Map zurueck
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
