// term.go - Raw-Mode-Steuerung fuer POSIX-Terminals
//
// Dieses Modul enthaelt:
// - Termios: gesicherte Terminal-Attribute als explizites Handle
// - SetRawMode: sichert die Attribute und schaltet in den Raw-Mode
// - UnsetRawMode: stellt die gesicherten Attribute wieder her

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package readword

import "golang.org/x/sys/unix"

// Termios haelt die gesicherten Terminal-Attribute fuer die
// Wiederherstellung. Das Handle gehoert dem Aufrufer von SetRawMode;
// es gibt keinen prozessweiten Zustand.
type Termios unix.Termios

// SetRawMode liest die aktuellen Terminal-Attribute, schaltet das Terminal
// auf Einzelzeichen-Lieferung ohne Echo um und gibt die urspruenglichen
// Attribute zurueck. ISIG wird mit abgeschaltet, damit Ctrl+C als Byte 0x03
// ankommt statt ein Signal auszuloesen.
func SetRawMode(fd uintptr) (*Termios, error) {
	termios, err := unix.IoctlGetTermios(int(fd), getTermiosIoctl)
	if err != nil {
		return nil, err
	}

	saved := Termios(*termios)

	termios.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	termios.Oflag &^= unix.OPOST
	termios.Cflag &^= unix.CSIZE | unix.PARENB
	termios.Cflag |= unix.CS8
	termios.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(int(fd), setTermiosIoctl, termios); err != nil {
		return nil, err
	}

	return &saved, nil
}

// UnsetRawMode stellt die von SetRawMode gesicherten Attribute wieder her
func UnsetRawMode(fd uintptr, termios *Termios) error {
	t := unix.Termios(*termios)
	return unix.IoctlSetTermios(int(fd), setTermiosIoctl, &t)
}
