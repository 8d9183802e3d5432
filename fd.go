package uds

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// How selects which half of a connection Shutdown disables.
type How int

const (
	// ShutRead disables further reads.
	ShutRead How = unix.SHUT_RD
	// ShutWrite disables further writes.
	ShutWrite How = unix.SHUT_WR
	// ShutReadWrite disables both.
	ShutReadWrite How = unix.SHUT_RDWR
)

// TimeoutKind selects which direction a socket timeout applies to.
type TimeoutKind int

const (
	// RecvTimeout bounds blocking receive calls (Read, RecvFrom, Accept).
	RecvTimeout TimeoutKind = unix.SO_RCVTIMEO
	// SendTimeout bounds blocking send calls (Write, SendTo).
	SendTimeout TimeoutKind = unix.SO_SNDTIMEO
)

// fd owns exactly one open socket descriptor. It is the single substrate the
// Stream, Listener and Datagram types are built on: creation, duplication,
// shutdown and release all live here, so the facades hold no state beyond
// their fd.
type fd struct {
	raw    int
	closed uint32
}

// newFD opens a new Unix domain socket of the given kind (unix.SOCK_STREAM or
// unix.SOCK_DGRAM).
func newFD(kind int) (*fd, error) {
	s, err := unix.Socket(unix.AF_UNIX, kind, 0)
	if err != nil {
		return nil, osErr("socket", err)
	}
	return adoptFD(s), nil
}

// adoptFD wraps an already-open descriptor and takes ownership of it: the
// descriptor is released when close is called, or by the finalizer if the
// handle is dropped without one. Because a finalizer can run as soon as the
// handle's last reference dies, every method that passes raw to the OS holds
// the handle with runtime.KeepAlive until the call returns; otherwise the
// descriptor could be closed and reused out from under an in-flight syscall.
func adoptFD(raw int) *fd {
	f := &fd{raw: raw}
	runtime.SetFinalizer(f, (*fd).close)
	return f
}

// newPair opens two mutually connected stream sockets in one socketpair call.
// The two handles are independently owned.
func newPair() (*fd, *fd, error) {
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, nil, osErr("socketpair", err)
	}
	return adoptFD(fds[0]), adoptFD(fds[1]), nil
}

// dup returns a second handle referencing the same underlying kernel socket.
// The handles have independent lifetimes; closing one does not close the
// other, but both observe the same connection and options set through either.
func (f *fd) dup() (*fd, error) {
	defer runtime.KeepAlive(f)
	nfd, err := unix.Dup(f.raw)
	if err != nil {
		return nil, osErr("dup", err)
	}
	return adoptFD(nfd), nil
}

// accept blocks until a peer connects and returns a handle owning the new
// connection's descriptor.
func (f *fd) accept() (*fd, error) {
	defer runtime.KeepAlive(f)
	nfd, _, err := unix.Accept(f.raw)
	if err != nil {
		return nil, osErr("accept", err)
	}
	return adoptFD(nfd), nil
}

func (f *fd) listen(backlog int) error {
	defer runtime.KeepAlive(f)
	if err := unix.Listen(f.raw, backlog); err != nil {
		return osErr("listen", err)
	}
	return nil
}

func (f *fd) shutdown(how How) error {
	defer runtime.KeepAlive(f)
	if err := unix.Shutdown(f.raw, int(how)); err != nil {
		return osErr("shutdown", err)
	}
	return nil
}

// close releases the descriptor exactly once. Errors from close(2) are not
// surfaced; there is nothing a caller could do with one.
func (f *fd) close() {
	if !atomic.CompareAndSwapUint32(&f.closed, 0, 1) {
		return
	}
	runtime.SetFinalizer(f, nil)
	unix.Close(f.raw)
}

func (f *fd) read(p []byte) (int, error) {
	defer runtime.KeepAlive(f)
	n, err := unix.Read(f.raw, clamp(p))
	if err != nil {
		return 0, osErr("read", err)
	}
	return n, nil
}

func (f *fd) write(p []byte) (int, error) {
	defer runtime.KeepAlive(f)
	n, err := unix.Write(f.raw, clamp(p))
	if err != nil {
		return 0, osErr("write", err)
	}
	return n, nil
}

// clamp keeps a single transfer at or under what the kernel will honor in one
// call; the remainder is the caller's next call, same as any short write.
func clamp(p []byte) []byte {
	if len(p) > maxRW {
		return p[:maxRW]
	}
	return p
}
