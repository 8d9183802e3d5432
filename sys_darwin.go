//go:build darwin
// +build darwin

package uds

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// maxRW matches the 1 GiB per-call cap xnu enforces on socket transfers.
const maxRW = 1 << 30

// x/sys dropped Darwin syscall numbers when it moved to libc trampolines, so
// these shims lean on the frozen syscall package's table instead, the same
// way the peer-credential code hand-defines the LOCAL_* constants x/sys
// lacks.

func sysConnect(s int, ra *rawAddr) error {
	_, _, e := syscall.Syscall(syscall.SYS_CONNECT, uintptr(s), uintptr(unsafe.Pointer(&ra.addr)), uintptr(ra.len))
	if e != 0 {
		return e
	}
	return nil
}

func sysBind(s int, ra *rawAddr) error {
	_, _, e := syscall.Syscall(syscall.SYS_BIND, uintptr(s), uintptr(unsafe.Pointer(&ra.addr)), uintptr(ra.len))
	if e != 0 {
		return e
	}
	return nil
}

func sysGetsockname(s int, raw *unix.RawSockaddrUnix, l *uint32) error {
	_, _, e := syscall.Syscall(syscall.SYS_GETSOCKNAME, uintptr(s), uintptr(unsafe.Pointer(raw)), uintptr(unsafe.Pointer(l)))
	if e != 0 {
		return e
	}
	return nil
}

func sysGetpeername(s int, raw *unix.RawSockaddrUnix, l *uint32) error {
	_, _, e := syscall.Syscall(syscall.SYS_GETPEERNAME, uintptr(s), uintptr(unsafe.Pointer(raw)), uintptr(unsafe.Pointer(l)))
	if e != 0 {
		return e
	}
	return nil
}

func sysSendto(s int, p []byte, ra *rawAddr) (int, error) {
	// NULL buffer for a zero-byte datagram; those are legal.
	var p0 unsafe.Pointer
	if len(p) > 0 {
		p0 = unsafe.Pointer(&p[0])
	}
	n, _, e := syscall.Syscall6(syscall.SYS_SENDTO, uintptr(s), uintptr(p0), uintptr(len(p)), 0, uintptr(unsafe.Pointer(&ra.addr)), uintptr(ra.len))
	if e != 0 {
		return 0, e
	}
	return int(n), nil
}

func sysRecvfrom(s int, p []byte, raw *unix.RawSockaddrUnix, l *uint32) (int, error) {
	var p0 unsafe.Pointer
	if len(p) > 0 {
		p0 = unsafe.Pointer(&p[0])
	}
	n, _, e := syscall.Syscall6(syscall.SYS_RECVFROM, uintptr(s), uintptr(p0), uintptr(len(p)), 0, uintptr(unsafe.Pointer(raw)), uintptr(unsafe.Pointer(l)))
	if e != 0 {
		return 0, e
	}
	return int(n), nil
}
