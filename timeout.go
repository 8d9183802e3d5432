//go:build !nosockettimeout
// +build !nosockettimeout

package uds

import (
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sys/unix"
)

// TimeoutsEnabled reports whether this build carries the socket timeout
// capability. Building with the "nosockettimeout" tag compiles it out and
// makes the timeout accessors return ErrTimeoutsDisabled.
const TimeoutsEnabled = true

// timeout reads the kernel's timeval for the given direction. An all-zero
// timeval is the kernel's encoding for "no timeout".
func (f *fd) timeout(k TimeoutKind) (time.Duration, error) {
	defer runtime.KeepAlive(f)
	tv, err := unix.GetsockoptTimeval(f.raw, unix.SOL_SOCKET, int(k))
	if err != nil {
		return 0, osErr("getsockopt", err)
	}
	if tv.Sec == 0 && tv.Usec == 0 {
		return 0, nil
	}
	return time.Duration(tv.Sec)*time.Second + time.Duration(tv.Usec)*time.Microsecond, nil
}

// setTimeout configures the kernel timeout for the given direction. Zero is
// rejected rather than passed through, because an all-zero timeval means "no
// timeout" to the kernel and the caller asked for the opposite. A duration
// below the kernel's microsecond granularity is bumped to 1us for the same
// reason. time.Duration tops out under 293 years, which fits Timeval.Sec on
// every platform this package builds for, so the seconds field cannot
// overflow.
func (f *fd) setTimeout(k TimeoutKind, d time.Duration) error {
	defer runtime.KeepAlive(f)
	if d == 0 {
		return fmt.Errorf("%w: cannot set a zero-duration timeout", ErrInvalidArgument)
	}
	if d < 0 {
		return fmt.Errorf("%w: cannot set a negative timeout", ErrInvalidArgument)
	}
	tv := unix.NsecToTimeval(d.Nanoseconds())
	if tv.Sec == 0 && tv.Usec == 0 {
		tv.Usec = 1
	}
	if err := unix.SetsockoptTimeval(f.raw, unix.SOL_SOCKET, int(k), &tv); err != nil {
		return osErr("setsockopt", err)
	}
	return nil
}

// clearTimeout writes the kernel's "no timeout" encoding; blocking calls in
// that direction wait indefinitely again.
func (f *fd) clearTimeout(k TimeoutKind) error {
	defer runtime.KeepAlive(f)
	if err := unix.SetsockoptTimeval(f.raw, unix.SOL_SOCKET, int(k), &unix.Timeval{}); err != nil {
		return osErr("setsockopt", err)
	}
	return nil
}
