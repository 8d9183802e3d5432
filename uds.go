/*
Package uds provides stream, datagram and socket-pair communication over Unix
Domain Sockets at the raw descriptor level. Where the net package hides the
socket address wire format and the descriptor lifecycle behind its poller,
this package owns both: it builds the kernel's sockaddr_un structure itself,
decodes the addresses the kernel hands back, and manages each descriptor
directly. That buys addressing the net package can't express cleanly,
like Linux's abstract namespace, and gives callers descriptor-level control
(duplication, directional shutdown, per-socket kernel timeouts).

The package currently only works for Linux/Darwin, as those are the systems
I use.

Addressing follows the kernel's convention: a path whose first byte is NUL is
an abstract-namespace address (a nonportable Linux extension); any other path
is a pathname address bound to the filesystem. Pathname sockets leave a
socket file behind - remove a stale one before re-binding, as this package
will not do it for you.

Every operation here is a plain blocking OS call. There is no internal
goroutine, poller or lock; concurrency is yours to supply, and the usual
shape is one goroutine per accepted connection:

	l, err := uds.Listen("/tmp/sock")
	if err != nil {
		// Do something
	}
	in := l.Incoming()
	for {
		conn, err := in.Next()
		if err != nil {
			continue // a single failed accept doesn't stop the next
		}
		go serve(conn)
	}

Read() and Write() calls by default infinitely block unless the socket is
closed or shut down. If you want bounded calls, set a kernel timeout with
SetTimeout and branch on IsTimeout.
*/
package uds

import (
	"io"
	"time"

	"golang.org/x/sys/unix"
)

// listenBacklog is the fixed backlog handed to listen(2).
const listenBacklog = 128

// Stream is a connected Unix domain stream socket. It implements
// io.ReadWriteCloser.
type Stream struct {
	fd *fd
}

// Connect opens a new stream socket and connects it to the socket at path.
//
// If path begins with a NUL byte it is interpreted as an abstract address
// (Linux only). Otherwise it is a pathname address corresponding to a path
// on the filesystem.
func Connect(path string) (*Stream, error) {
	ra, err := sockaddrUnix(path)
	if err != nil {
		return nil, err
	}
	f, err := newFD(unix.SOCK_STREAM)
	if err != nil {
		return nil, err
	}
	if err := f.connect(ra); err != nil {
		f.close()
		return nil, err
	}
	return &Stream{fd: f}, nil
}

// Pair creates an unnamed pair of connected stream sockets. No address
// encoding is involved; both ends report unnamed addresses.
func Pair() (*Stream, *Stream, error) {
	f1, f2, err := newPair()
	if err != nil {
		return nil, nil, err
	}
	return &Stream{fd: f1}, &Stream{fd: f2}, nil
}

// Clone creates a new independently owned handle to the underlying socket.
// Both handles read and write the same byte stream and options set through
// one are visible through the other; they reference the same kernel object,
// not a copy. Closing one does not close the other.
func (s *Stream) Clone() (*Stream, error) {
	f, err := s.fd.dup()
	if err != nil {
		return nil, err
	}
	return &Stream{fd: f}, nil
}

// Read implements io.Reader. It blocks until data arrives, the peer shuts
// down its write half (io.EOF), or a receive timeout set with SetTimeout
// expires.
func (s *Stream) Read(p []byte) (int, error) {
	n, err := s.fd.read(p)
	if err != nil {
		return n, err
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Write implements io.Writer. Bytes are handed straight to the kernel; there
// is no internal buffer.
func (s *Stream) Write(p []byte) (int, error) {
	return s.fd.write(p)
}

// Flush is a no-op kept for callers that expect a flushable writer; Write
// never buffers.
func (s *Stream) Flush() error { return nil }

// LocalAddr returns the socket address of the local half of this connection.
// It may legitimately report an unnamed address (socket-pair ends and
// unbound sockets do).
func (s *Stream) LocalAddr() (SocketAddr, error) {
	return s.fd.getsockname()
}

// PeerAddr returns the socket address of the remote half of this connection.
func (s *Stream) PeerAddr() (SocketAddr, error) {
	return s.fd.getpeername()
}

// Shutdown disables reads, writes, or both on the connection. Pending and
// future calls on the affected half return immediately.
func (s *Stream) Shutdown(how How) error {
	return s.fd.shutdown(how)
}

// SetTimeout bounds future blocking calls in the given direction. A zero or
// negative duration is rejected; use ClearTimeout to block indefinitely
// again. Durations too small for the kernel's microsecond granularity are
// bumped to the smallest nonzero setting rather than silently becoming "no
// timeout".
func (s *Stream) SetTimeout(kind TimeoutKind, d time.Duration) error {
	return s.fd.setTimeout(kind, d)
}

// Timeout returns the configured timeout for the given direction, or 0 if
// none is set.
func (s *Stream) Timeout(kind TimeoutKind) (time.Duration, error) {
	return s.fd.timeout(kind)
}

// ClearTimeout removes the timeout for the given direction; blocking calls
// wait indefinitely again.
func (s *Stream) ClearTimeout(kind TimeoutKind) error {
	return s.fd.clearTimeout(kind)
}

// Close implements io.Closer. The descriptor is released exactly once and
// close errors are never surfaced, so the returned error is always nil.
func (s *Stream) Close() error {
	s.fd.close()
	return nil
}

// RawFd returns the socket's descriptor number. The Stream keeps ownership;
// don't close it out from under us.
func (s *Stream) RawFd() int { return s.fd.raw }

// Listener is a Unix domain stream socket listening for connections.
type Listener struct {
	fd *fd
}

// Listen creates a listener bound to the socket at path, using the same
// pathname/abstract addressing convention as Connect. If a pathname socket
// file already exists at path, bind fails; stale socket files are the
// caller's to remove.
func Listen(path string) (*Listener, error) {
	ra, err := sockaddrUnix(path)
	if err != nil {
		return nil, err
	}
	f, err := newFD(unix.SOCK_STREAM)
	if err != nil {
		return nil, err
	}
	if err := f.bind(ra); err != nil {
		f.close()
		return nil, err
	}
	if err := f.listen(listenBacklog); err != nil {
		f.close()
		return nil, err
	}
	return &Listener{fd: f}, nil
}

// Accept blocks until a peer connects and returns the accepted connection.
// A failed accept never closes the listener; accept loops commonly skip a
// failed iteration and continue.
func (l *Listener) Accept() (*Stream, error) {
	f, err := l.fd.accept()
	if err != nil {
		return nil, err
	}
	return &Stream{fd: f}, nil
}

// Clone creates a new independently owned handle to the underlying socket.
// Both handles can accept incoming connections.
func (l *Listener) Clone() (*Listener, error) {
	f, err := l.fd.dup()
	if err != nil {
		return nil, err
	}
	return &Listener{fd: f}, nil
}

// LocalAddr returns the address the listener is bound to.
func (l *Listener) LocalAddr() (SocketAddr, error) {
	return l.fd.getsockname()
}

// Incoming returns an iterator over connections to the listener.
func (l *Listener) Incoming() *Incoming {
	return &Incoming{l: l}
}

// Close implements io.Closer; as with Stream, the returned error is always
// nil.
func (l *Listener) Close() error {
	l.fd.close()
	return nil
}

// RawFd returns the listener's descriptor number. The Listener keeps
// ownership.
func (l *Listener) RawFd() int { return l.fd.raw }

// Incoming is an iterator over incoming connections to a Listener. It never
// runs out: every Next is a fresh blocking accept, and an error from one
// accept does not stop the next. Consumers impose their own stopping
// condition. The Listener is not owned by the iterator; closing the iterator
// away does nothing.
type Incoming struct {
	l *Listener
}

// Next blocks for the next connection attempt and returns the accepted
// Stream or the error from that single accept.
func (in *Incoming) Next() (*Stream, error) {
	return in.l.Accept()
}
