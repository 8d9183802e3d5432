package uds

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// sunPathOffset is the byte offset of the sun_path field within the kernel's
// sockaddr_un structure. All of the codec's length arithmetic hangs off this
// one number, so it is computed exactly once from the real struct layout.
var sunPathOffset = int(unsafe.Offsetof(unix.RawSockaddrUnix{}.Path))

// Kind describes which of the three forms a Unix domain socket address takes.
type Kind int

const (
	// KindUnnamed is an endpoint with no bound address, such as a socket-pair
	// end or a socket that was never bound.
	KindUnnamed Kind = iota

	// KindPathname is an address bound to a path on the filesystem.
	KindPathname

	// KindAbstract is an address in Linux's abstract namespace, which is not
	// tied to the filesystem. Abstract addresses are a nonportable Linux
	// extension.
	KindAbstract
)

// rawAddr is a socket address in the kernel's wire form, paired with the
// total length to hand to the OS call that consumes it.
type rawAddr struct {
	addr unix.RawSockaddrUnix
	len  uint32
}

// sockaddrUnix encodes path into the kernel's sockaddr_un wire form. A path
// whose first byte is NUL selects abstract-namespace addressing; anything
// else is a pathname address and gets a trailing NUL in the wire form. The
// encoded path must fit sun_path: abstract names need no terminator but must
// still be strictly shorter than the field, and pathname addresses must
// leave room for the terminator.
func sockaddrUnix(path string) (*rawAddr, error) {
	ra := &rawAddr{}

	if len(path) > 0 && path[0] == 0 && !abstractAddrs {
		return nil, fmt.Errorf("%w: abstract socket addresses are a Linux-only extension", ErrInvalidArgument)
	}

	switch {
	case len(path) > len(ra.addr.Path):
		if path[0] == 0 {
			return nil, fmt.Errorf("%w: path must be no longer than SUN_LEN", ErrInvalidArgument)
		}
		return nil, fmt.Errorf("%w: path must be shorter than SUN_LEN", ErrInvalidArgument)
	case len(path) == len(ra.addr.Path):
		return nil, fmt.Errorf("%w: path must be shorter than SUN_LEN", ErrInvalidArgument)
	}

	for i := 0; i < len(path); i++ {
		ra.addr.Path[i] = int8(path[i])
	}
	// The trailing NUL for pathname addresses is already in place because the
	// struct starts out zeroed.

	l := sunPathOffset + len(path)
	if len(path) > 0 && path[0] != 0 {
		l++ // terminator counts toward the reported length
	}
	ra.len = uint32(l)
	finishRawAddr(&ra.addr, ra.len)
	return ra, nil
}

// SocketAddr is an address associated with a Unix domain socket, as filled in
// by the kernel or built by this package's encoder. It holds the raw wire
// form; classification into one of the three Kinds happens on demand.
type SocketAddr struct {
	addr unix.RawSockaddrUnix
	len  uint32
}

// addrFromRaw validates an address structure the kernel filled in and wraps
// it as a SocketAddr. The family field must be AF_UNIX.
func addrFromRaw(raw *unix.RawSockaddrUnix, l uint32) (SocketAddr, error) {
	if raw.Family != unix.AF_UNIX {
		return SocketAddr{}, fmt.Errorf("%w: file descriptor did not correspond to a Unix socket", ErrInvalidArgument)
	}
	return SocketAddr{addr: *raw, len: l}, nil
}

// Kind classifies the address. A reported length that covers none of
// sun_path means unnamed; a leading NUL byte means abstract; anything else is
// a pathname.
//
// OSX reports a length of 16 and a zeroed sun_path for unnamed addresses, so
// off Linux a zeroed first path byte is also read as unnamed. That check is a
// best-effort heuristic for the platforms this package supports, not a
// guarantee about every OS family's reporting.
func (a SocketAddr) Kind() Kind {
	n := int(a.len) - sunPathOffset
	switch {
	case n <= 0:
		return KindUnnamed
	case zeroPathIsUnnamed && a.addr.Path[0] == 0:
		return KindUnnamed
	case a.addr.Path[0] == 0:
		return KindAbstract
	default:
		return KindPathname
	}
}

// Pathname returns the filesystem path this address is bound to, with the
// wire form's trailing NUL stripped. It returns "" if Kind() is not
// KindPathname.
func (a SocketAddr) Pathname() string {
	if a.Kind() != KindPathname {
		return ""
	}
	n := int(a.len) - sunPathOffset
	return string(a.pathBytes()[:n-1])
}

// AbstractName returns the abstract namespace entry with its leading NUL
// marker stripped. It returns nil if Kind() is not KindAbstract.
func (a SocketAddr) AbstractName() []byte {
	if a.Kind() != KindAbstract {
		return nil
	}
	n := int(a.len) - sunPathOffset
	return a.pathBytes()[1:n]
}

// String implements fmt.Stringer.
func (a SocketAddr) String() string {
	switch a.Kind() {
	case KindPathname:
		return fmt.Sprintf("%q (pathname)", a.Pathname())
	case KindAbstract:
		return fmt.Sprintf("%q (abstract)", a.AbstractName())
	}
	return "(unnamed)"
}

// pathBytes widens sun_path from the kernel's char type to bytes.
func (a SocketAddr) pathBytes() []byte {
	b := make([]byte, len(a.addr.Path))
	for i, c := range a.addr.Path {
		b[i] = byte(c)
	}
	return b
}
