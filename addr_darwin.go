//go:build darwin
// +build darwin

package uds

import (
	"golang.org/x/sys/unix"
)

const (
	// abstractAddrs: no abstract namespace outside Linux; the encoder rejects
	// leading-NUL paths.
	abstractAddrs = false

	// zeroPathIsUnnamed: OSX reports unnamed addresses as length 16 with a
	// zeroed sun_path, so a zeroed first path byte means unnamed here.
	zeroPathIsUnnamed = true
)

// finishRawAddr stamps the platform's family and length fields onto an
// encoded address. Darwin's sockaddr carries its own length byte.
func finishRawAddr(raw *unix.RawSockaddrUnix, l uint32) {
	raw.Len = uint8(l)
	raw.Family = unix.AF_UNIX
}
