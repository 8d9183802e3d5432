//go:build darwin
// +build darwin

package uds

import (
	"fmt"
	"os/user"
	"strconv"

	"github.com/shirou/gopsutil/process"
	"golang.org/x/sys/unix"
)

const (
	syscall_SOL_LOCAL     = 0
	syscall_LOCAL_PEERPID = 2
)

// readCreds returns the credentials of the process on the far end of the
// socket. Darwin only hands back the PID, so the UID/GID come from a process
// table lookup.
// Some of this came from: https://github.com/mysteriumnetwork/node/issues/2204
func readCreds(fd int) (Cred, error) {
	pid, err := unix.GetsockoptInt(fd, syscall_SOL_LOCAL, syscall_LOCAL_PEERPID)
	if err != nil {
		return Cred{}, fmt.Errorf("GetsockoptInt() error: %s", err)
	}

	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return Cred{}, fmt.Errorf("could not find PID for peer connected to socket: %w", err)
	}

	uids, err := proc.Uids()
	if err != nil || len(uids) == 0 {
		return Cred{}, fmt.Errorf("could not find UIDs associated with peer's PID(%v): %w", pid, err)
	}

	u, err := user.LookupId(strconv.Itoa(int(uids[0])))
	if err != nil {
		return Cred{}, fmt.Errorf("could not lookup UID(%v) for peer PID(%v): %w", uids[0], pid, err)
	}
	gid, err := strconv.Atoi(u.Gid)
	if err != nil {
		return Cred{}, fmt.Errorf("could not lookup GID for UID(%v) PID(%v): %w", uids[0], pid, err)
	}

	return Cred{PID: ID(pid), UID: ID(uids[0]), GID: ID(gid)}, nil
}
