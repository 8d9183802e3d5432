//go:build linux
// +build linux

package uds

import (
	"bytes"
	"strings"
	"testing"
)

func TestAbstractRoundTrip(t *testing.T) {
	for _, name := range []string{"the path", "a", strings.Repeat("a", sunPathLen-2)} {
		path := "\x00" + name

		ra, err := sockaddrUnix(path)
		if err != nil {
			t.Fatalf("TestAbstractRoundTrip(%q): encode error: %s", name, err)
		}
		// Abstract names carry no terminator; the length covers the leading
		// NUL plus the name.
		wantLen := sunPathOffset + len(path)
		if int(ra.len) != wantLen {
			t.Errorf("TestAbstractRoundTrip(%q): encoded length: got %d, want %d", name, ra.len, wantLen)
		}

		addr, err := addrFromRaw(&ra.addr, ra.len)
		if err != nil {
			t.Fatalf("TestAbstractRoundTrip(%q): decode error: %s", name, err)
		}
		if addr.Kind() != KindAbstract {
			t.Errorf("TestAbstractRoundTrip(%q): kind: got %v, want KindAbstract", name, addr.Kind())
		}
		if got := addr.AbstractName(); !bytes.Equal(got, []byte(name)) {
			t.Errorf("TestAbstractRoundTrip(%q): got %q", name, got)
		}
	}
}
