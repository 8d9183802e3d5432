package uds

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/sys/unix"
)

// sunPathLen is the capacity of the wire form's path field on this platform.
var sunPathLen = len(unix.RawSockaddrUnix{}.Path)

func TestPathnameRoundTrip(t *testing.T) {
	for _, path := range []string{"/tmp/sock", "x", strings.Repeat("a", sunPathLen-1)} {
		ra, err := sockaddrUnix(path)
		if err != nil {
			t.Fatalf("TestPathnameRoundTrip(%q): encode error: %s", path, err)
		}
		wantLen := sunPathOffset + len(path) + 1
		if int(ra.len) != wantLen {
			t.Errorf("TestPathnameRoundTrip(%q): encoded length: got %d, want %d", path, ra.len, wantLen)
		}

		addr, err := addrFromRaw(&ra.addr, ra.len)
		if err != nil {
			t.Fatalf("TestPathnameRoundTrip(%q): decode error: %s", path, err)
		}
		if addr.Kind() != KindPathname {
			t.Errorf("TestPathnameRoundTrip(%q): kind: got %v, want KindPathname", path, addr.Kind())
		}
		if got := addr.Pathname(); got != path {
			t.Errorf("TestPathnameRoundTrip(%q): got %q", path, got)
		}
	}
}

func TestEncodeBounds(t *testing.T) {
	tests := []struct {
		desc string
		path string
	}{
		{"pathname of exactly sun_path capacity", strings.Repeat("a", sunPathLen)},
		{"pathname exceeding sun_path capacity", strings.Repeat("a", sunPathLen+10)},
		{"abstract of exactly sun_path capacity", "\x00" + strings.Repeat("a", sunPathLen-1)},
		{"abstract exceeding sun_path capacity", "\x00" + strings.Repeat("a", sunPathLen+10)},
	}

	for _, test := range tests {
		if _, err := sockaddrUnix(test.path); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("TestEncodeBounds(%s): got err == %v, want ErrInvalidArgument", test.desc, err)
		}
	}
}

func TestEmptyPath(t *testing.T) {
	ra, err := sockaddrUnix("")
	if err != nil {
		t.Fatalf("TestEmptyPath: encode error: %s", err)
	}
	// No terminator for an empty path, so the length stops at the path field.
	if int(ra.len) != sunPathOffset {
		t.Errorf("TestEmptyPath: encoded length: got %d, want %d", ra.len, sunPathOffset)
	}

	addr, err := addrFromRaw(&ra.addr, ra.len)
	if err != nil {
		t.Fatalf("TestEmptyPath: decode error: %s", err)
	}
	if addr.Kind() != KindUnnamed {
		t.Errorf("TestEmptyPath: kind: got %v, want KindUnnamed", addr.Kind())
	}
}

func TestDecodeFamilyMismatch(t *testing.T) {
	raw := unix.RawSockaddrUnix{}
	raw.Family = unix.AF_INET

	if _, err := addrFromRaw(&raw, uint32(sunPathOffset)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("TestDecodeFamilyMismatch: got err == %v, want ErrInvalidArgument", err)
	}
}

func TestDecodeUnnamed(t *testing.T) {
	raw := unix.RawSockaddrUnix{}
	finishRawAddr(&raw, uint32(sunPathOffset))

	addr, err := addrFromRaw(&raw, uint32(sunPathOffset))
	if err != nil {
		t.Fatalf("TestDecodeUnnamed: decode error: %s", err)
	}
	if addr.Kind() != KindUnnamed {
		t.Errorf("TestDecodeUnnamed: kind: got %v, want KindUnnamed", addr.Kind())
	}
	if got := addr.String(); got != "(unnamed)" {
		t.Errorf("TestDecodeUnnamed: String(): got %q, want %q", got, "(unnamed)")
	}
}
