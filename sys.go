package uds

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// The calls below are the ones that consume or produce a socket address. They
// go through the platform's raw syscall shims rather than the x/sys wrappers
// so the wire bytes on the way in are exactly what sockaddrUnix encoded, and
// the bytes on the way out reach addrFromRaw untouched.

func (f *fd) connect(ra *rawAddr) error {
	defer runtime.KeepAlive(f)
	if err := sysConnect(f.raw, ra); err != nil {
		return osErr("connect", err)
	}
	return nil
}

func (f *fd) bind(ra *rawAddr) error {
	defer runtime.KeepAlive(f)
	if err := sysBind(f.raw, ra); err != nil {
		return osErr("bind", err)
	}
	return nil
}

func (f *fd) getsockname() (SocketAddr, error) {
	defer runtime.KeepAlive(f)
	var raw unix.RawSockaddrUnix
	l := uint32(unsafe.Sizeof(raw))
	if err := sysGetsockname(f.raw, &raw, &l); err != nil {
		return SocketAddr{}, osErr("getsockname", err)
	}
	return addrFromRaw(&raw, l)
}

func (f *fd) getpeername() (SocketAddr, error) {
	defer runtime.KeepAlive(f)
	var raw unix.RawSockaddrUnix
	l := uint32(unsafe.Sizeof(raw))
	if err := sysGetpeername(f.raw, &raw, &l); err != nil {
		return SocketAddr{}, osErr("getpeername", err)
	}
	return addrFromRaw(&raw, l)
}

func (f *fd) sendto(p []byte, ra *rawAddr) (int, error) {
	defer runtime.KeepAlive(f)
	n, err := sysSendto(f.raw, clamp(p), ra)
	if err != nil {
		return 0, osErr("sendto", err)
	}
	return n, nil
}

// recvfrom receives a single datagram and decodes the sender's address. A
// zero byte count with a nil error is a genuine zero-byte datagram, not a
// failure; errors only come from a negative OS return.
func (f *fd) recvfrom(p []byte) (int, SocketAddr, error) {
	defer runtime.KeepAlive(f)
	var raw unix.RawSockaddrUnix
	l := uint32(unsafe.Sizeof(raw))
	n, err := sysRecvfrom(f.raw, clamp(p), &raw, &l)
	if err != nil {
		return 0, SocketAddr{}, osErr("recvfrom", err)
	}
	addr, err := addrFromRaw(&raw, l)
	if err != nil {
		return n, SocketAddr{}, err
	}
	return n, addr, nil
}
