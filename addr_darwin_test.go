//go:build darwin
// +build darwin

package uds

import (
	"errors"
	"testing"

	"golang.org/x/sys/unix"
)

func TestAbstractRejected(t *testing.T) {
	if _, err := sockaddrUnix("\x00the path"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("TestAbstractRejected: got err == %v, want ErrInvalidArgument", err)
	}
}

// OSX reports unnamed addresses as length 16 with a zeroed sun_path; the
// decoder must not read that as a zero-length pathname or abstract name.
func TestUnnamedLen16Quirk(t *testing.T) {
	raw := unix.RawSockaddrUnix{}
	raw.Len = 16
	raw.Family = unix.AF_UNIX

	addr, err := addrFromRaw(&raw, 16)
	if err != nil {
		t.Fatalf("TestUnnamedLen16Quirk: decode error: %s", err)
	}
	if addr.Kind() != KindUnnamed {
		t.Errorf("TestUnnamedLen16Quirk: kind: got %v, want KindUnnamed", addr.Kind())
	}
}
