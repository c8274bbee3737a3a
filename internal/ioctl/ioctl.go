// Package ioctl wraps the ioctl system call.
package ioctl

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Mode is the IOCTL transfer direction.
type Mode uint8

// Modes
const (
	None Mode = iota
	Write
	Read
)

// Command to be sent over ioctl.
type Command uintptr

// New encodes a command from its direction, argument size, driver type
// and command number, as laid out in <asm-generic/ioctl.h>.
func New(mode Mode, size uint16, typ, nr uint8) Command {
	return Command(mode)<<30 | Command(size&0x3fff)<<16 | Command(typ)<<8 | Command(nr)
}

func (c Command) String() string {
	var (
		mode = Mode(c >> 30 & 0x03)
		size = c >> 16 & 0x3fff
		typ  = c >> 8 & 0xff
		nr   = c & 0xff
		str  string
	)
	if mode&Write > 0 {
		str += " write"
	}
	if mode&Read > 0 {
		str += " read"
	}
	return fmt.Sprintf("ioctl%s (%d bytes) %q 0x%02x", str, size, rune(typ), uintptr(nr))
}

// Do executes the ioctl call. The argument is kept a pointer until the
// call itself so the runtime keeps the referenced value alive.
func Do(fd uintptr, command Command, arg unsafe.Pointer) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(command), uintptr(arg)); errno != 0 {
		return fmt.Errorf("ioctl %s: %w", command, errno)
	}
	return nil
}
