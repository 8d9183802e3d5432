package uds

import (
	"time"

	"golang.org/x/sys/unix"
)

// Datagram is a Unix domain datagram socket. Datagrams preserve message
// boundaries but the OS makes no ordering promise across packets.
type Datagram struct {
	fd *fd
}

// ListenDatagram creates a datagram socket bound to the socket at path,
// using the same pathname/abstract addressing convention as Connect.
func ListenDatagram(path string) (*Datagram, error) {
	ra, err := sockaddrUnix(path)
	if err != nil {
		return nil, err
	}
	f, err := newFD(unix.SOCK_DGRAM)
	if err != nil {
		return nil, err
	}
	if err := f.bind(ra); err != nil {
		f.close()
		return nil, err
	}
	return &Datagram{fd: f}, nil
}

// SendTo sends p as a single datagram to the socket at path and returns the
// number of bytes sent.
func (d *Datagram) SendTo(p []byte, path string) (int, error) {
	ra, err := sockaddrUnix(path)
	if err != nil {
		return 0, err
	}
	return d.fd.sendto(p, ra)
}

// RecvFrom receives a single datagram into p, returning the byte count and
// the sender's address. A zero count with a nil error is a genuine zero-byte
// datagram; the sender of an unbound socket shows up as an unnamed address.
func (d *Datagram) RecvFrom(p []byte) (int, SocketAddr, error) {
	return d.fd.recvfrom(p)
}

// LocalAddr returns the address this socket is bound to.
func (d *Datagram) LocalAddr() (SocketAddr, error) {
	return d.fd.getsockname()
}

// Shutdown disables receives, sends, or both on the socket.
func (d *Datagram) Shutdown(how How) error {
	return d.fd.shutdown(how)
}

// SetTimeout bounds future blocking calls in the given direction; see
// Stream.SetTimeout for the zero-duration and granularity rules.
func (d *Datagram) SetTimeout(kind TimeoutKind, t time.Duration) error {
	return d.fd.setTimeout(kind, t)
}

// Timeout returns the configured timeout for the given direction, or 0 if
// none is set.
func (d *Datagram) Timeout(kind TimeoutKind) (time.Duration, error) {
	return d.fd.timeout(kind)
}

// ClearTimeout removes the timeout for the given direction.
func (d *Datagram) ClearTimeout(kind TimeoutKind) error {
	return d.fd.clearTimeout(kind)
}

// Close implements io.Closer; the returned error is always nil.
func (d *Datagram) Close() error {
	d.fd.close()
	return nil
}

// RawFd returns the socket's descriptor number. The Datagram keeps
// ownership.
func (d *Datagram) RawFd() int { return d.fd.raw }
