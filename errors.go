package uds

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// ErrInvalidArgument is wrapped by every validation failure this package
// produces: a path too long for its addressing mode, an address structure
// whose family is not AF_UNIX, or a zero-duration timeout. Branch on it with
// errors.Is. Everything else that can fail is a failing OS call, surfaced as
// an *os.SyscallError carrying the errno verbatim.
var ErrInvalidArgument = errors.New("invalid argument")

// osErr dresses a failing OS call in the call's name. The errno is carried
// unmodified; this package never reinterprets OS failures.
func osErr(call string, err error) error {
	return os.NewSyscallError(call, err)
}

// IsTimeout reports whether err is the failure a blocking call returns when a
// socket timeout set with SetTimeout expires. The kernel may report either a
// would-block or a timed-out errno; both are legitimate timeout signals.
func IsTimeout(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.ETIMEDOUT)
}
