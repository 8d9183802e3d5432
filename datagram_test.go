package uds

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestDatagramExchange(t *testing.T) {
	path1 := tmpSocketPath()
	path2 := tmpSocketPath()
	defer os.Remove(path1)
	defer os.Remove(path2)

	sock1, err := ListenDatagram(path1)
	if err != nil {
		t.Fatalf("TestDatagramExchange: bind sock1: %s", err)
	}
	defer sock1.Close()
	sock2, err := ListenDatagram(path2)
	if err != nil {
		t.Fatalf("TestDatagramExchange: bind sock2: %s", err)
	}
	defer sock2.Close()

	msg := []byte("hello world")
	n, err := sock1.SendTo(msg, path2)
	if err != nil {
		t.Fatalf("TestDatagramExchange: SendTo: %s", err)
	}
	if n != len(msg) {
		t.Errorf("TestDatagramExchange: SendTo: sent %d bytes, want %d", n, len(msg))
	}

	buf := make([]byte, 64)
	n, from, err := sock2.RecvFrom(buf)
	if err != nil {
		t.Fatalf("TestDatagramExchange: RecvFrom: %s", err)
	}
	if n != len(msg) || string(buf[:n]) != string(msg) {
		t.Errorf("TestDatagramExchange: RecvFrom: got %q (%d bytes), want %q", buf[:n], n, msg)
	}
	if from.Kind() != KindPathname || from.Pathname() != path1 {
		t.Errorf("TestDatagramExchange: sender address: got %v, want %q as pathname", from, path1)
	}
}

// A zero-byte datagram is a successful receive, not an error.
func TestZeroByteDatagram(t *testing.T) {
	path1 := tmpSocketPath()
	path2 := tmpSocketPath()
	defer os.Remove(path1)
	defer os.Remove(path2)

	sock1, err := ListenDatagram(path1)
	if err != nil {
		t.Fatalf("TestZeroByteDatagram: bind sock1: %s", err)
	}
	defer sock1.Close()
	sock2, err := ListenDatagram(path2)
	if err != nil {
		t.Fatalf("TestZeroByteDatagram: bind sock2: %s", err)
	}
	defer sock2.Close()

	if _, err := sock1.SendTo(nil, path2); err != nil {
		t.Fatalf("TestZeroByteDatagram: SendTo: %s", err)
	}

	buf := make([]byte, 16)
	n, from, err := sock2.RecvFrom(buf)
	if err != nil {
		t.Fatalf("TestZeroByteDatagram: RecvFrom: %s", err)
	}
	if n != 0 {
		t.Errorf("TestZeroByteDatagram: got %d bytes, want 0", n)
	}
	if from.Pathname() != path1 {
		t.Errorf("TestZeroByteDatagram: sender address: got %v, want %q", from, path1)
	}
}

func TestDatagramOversizedPath(t *testing.T) {
	long := strings.Repeat("a", sunPathLen+10)

	if _, err := ListenDatagram(long); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("TestDatagramOversizedPath: ListenDatagram: got err == %v, want ErrInvalidArgument", err)
	}

	path := tmpSocketPath()
	defer os.Remove(path)
	sock, err := ListenDatagram(path)
	if err != nil {
		t.Fatalf("TestDatagramOversizedPath: bind: %s", err)
	}
	defer sock.Close()

	if _, err := sock.SendTo([]byte("x"), long); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("TestDatagramOversizedPath: SendTo: got err == %v, want ErrInvalidArgument", err)
	}
}
