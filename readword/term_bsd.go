// term_bsd.go - ioctl-Requests fuer BSD-artige Termios (inkl. macOS)

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package readword

import "golang.org/x/sys/unix"

const (
	getTermiosIoctl = unix.TIOCGETA
	setTermiosIoctl = unix.TIOCSETA
)
