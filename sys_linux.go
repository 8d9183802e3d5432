//go:build linux
// +build linux

package uds

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// maxRW is MAX_RW_COUNT, the most the kernel will move in one read or write.
const maxRW = 0x7ffff000

func sysConnect(s int, ra *rawAddr) error {
	_, _, e := unix.Syscall(unix.SYS_CONNECT, uintptr(s), uintptr(unsafe.Pointer(&ra.addr)), uintptr(ra.len))
	if e != 0 {
		return e
	}
	return nil
}

func sysBind(s int, ra *rawAddr) error {
	_, _, e := unix.Syscall(unix.SYS_BIND, uintptr(s), uintptr(unsafe.Pointer(&ra.addr)), uintptr(ra.len))
	if e != 0 {
		return e
	}
	return nil
}

func sysGetsockname(s int, raw *unix.RawSockaddrUnix, l *uint32) error {
	_, _, e := unix.Syscall(unix.SYS_GETSOCKNAME, uintptr(s), uintptr(unsafe.Pointer(raw)), uintptr(unsafe.Pointer(l)))
	if e != 0 {
		return e
	}
	return nil
}

func sysGetpeername(s int, raw *unix.RawSockaddrUnix, l *uint32) error {
	_, _, e := unix.Syscall(unix.SYS_GETPEERNAME, uintptr(s), uintptr(unsafe.Pointer(raw)), uintptr(unsafe.Pointer(l)))
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
	n, _, e := unix.Syscall6(unix.SYS_SENDTO, uintptr(s), uintptr(p0), uintptr(len(p)), 0, uintptr(unsafe.Pointer(&ra.addr)), uintptr(ra.len))
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
	n, _, e := unix.Syscall6(unix.SYS_RECVFROM, uintptr(s), uintptr(p0), uintptr(len(p)), 0, uintptr(unsafe.Pointer(raw)), uintptr(unsafe.Pointer(l)))
	if e != 0 {
		return 0, e
	}
	return int(n), nil
}
