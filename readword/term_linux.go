// term_linux.go - ioctl-Requests fuer Linux-Termios

//go:build linux

package readword

import "golang.org/x/sys/unix"

const (
	getTermiosIoctl = unix.TCGETS
	setTermiosIoctl = unix.TCSETS
)
