// term_windows.go - Console-Mode-Steuerung fuer Windows
//
// Dieses Modul enthaelt:
// - State: gesicherter Console-Mode als explizites Handle
// - SetRawMode: sichert den Mode und deaktiviert Echo und Zeilenpufferung
// - UnsetRawMode: stellt den gesicherten Mode wieder her

//go:build windows

package readword

import "golang.org/x/sys/windows"

// State haelt den gesicherten Console-Mode fuer die Wiederherstellung
type State struct {
	mode uint32
}

// SetRawMode sichert den aktuellen Console-Mode und schaltet Echo,
// Zeilenpufferung und Processed-Input ab. Ohne Processed-Input kommt
// Ctrl+C als Byte 0x03 an statt den Prozess zu beenden.
func SetRawMode(fd uintptr) (*State, error) {
	handle := windows.Handle(fd)

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return nil, err
	}

	raw := mode &^ (windows.ENABLE_ECHO_INPUT | windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_INPUT)
	if err := windows.SetConsoleMode(handle, raw); err != nil {
		return nil, err
	}

	return &State{mode: mode}, nil
}

// UnsetRawMode stellt den von SetRawMode gesicherten Console-Mode wieder her
func UnsetRawMode(fd uintptr, state *State) error {
	return windows.SetConsoleMode(windows.Handle(fd), state.mode)
}
