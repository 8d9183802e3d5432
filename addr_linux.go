//go:build linux
// +build linux

package uds

import (
	"golang.org/x/sys/unix"
)

const (
	// abstractAddrs: the abstract namespace is a Linux extension.
	abstractAddrs = true

	// zeroPathIsUnnamed: Linux reports unnamed addresses with a length that
	// covers none of sun_path, so the length check alone is enough.
	zeroPathIsUnnamed = false
)

// finishRawAddr stamps the platform's family field onto an encoded address.
func finishRawAddr(raw *unix.RawSockaddrUnix, _ uint32) {
	raw.Family = unix.AF_UNIX
}
