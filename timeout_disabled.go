//go:build nosockettimeout
// +build nosockettimeout

package uds

import (
	"errors"
	"time"
)

// TimeoutsEnabled reports whether this build carries the socket timeout
// capability.
const TimeoutsEnabled = false

// ErrTimeoutsDisabled is returned by every timeout accessor when the package
// is built with the nosockettimeout tag.
var ErrTimeoutsDisabled = errors.New("socket timeouts disabled by the nosockettimeout build tag")

func (f *fd) timeout(TimeoutKind) (time.Duration, error) {
	return 0, ErrTimeoutsDisabled
}

func (f *fd) setTimeout(TimeoutKind, time.Duration) error {
	return ErrTimeoutsDisabled
}

func (f *fd) clearTimeout(TimeoutKind) error {
	return ErrTimeoutsDisabled
}
