//go:build linux
// +build linux

package uds

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// readCreds returns the credentials of the process on the far end of the
// socket.
// Ref: https://docs.fedoraproject.org/en-US/Fedora_Security_Team/1/html/Defensive_Coding/sect-Defensive_Coding-Authentication-UNIX_Domain.html
func readCreds(fd int) (Cred, error) {
	cred, err := unix.GetsockoptUcred(fd, unix.SOL_SOCKET, unix.SO_PEERCRED)
	if err != nil {
		return Cred{}, fmt.Errorf("GetsockoptUcred() error: %s", err)
	}
	return Cred{PID: ID(cred.Pid), UID: ID(cred.Uid), GID: ID(cred.Gid)}, nil
}
