package uds

import (
	"os"
	"os/user"
	"runtime"
	"strconv"
)

// ID represents a numeric ID. Go in various libraries stores IDs such as Uid
// or Gid as strings, while more OS specific libraries use int or int32. This
// simply unifies that so it is easier to translate for whatever need you
// have. I am not interested in supporting OSes with non-numeric IDs in this
// package.
type ID int

// String returns the ID as a string.
func (i ID) String() string {
	return strconv.Itoa(int(i))
}

// Int returns the ID as an int.
func (i ID) Int() int {
	return int(i)
}

// Int32 returns the ID as an int32.
func (i ID) Int32() int32 {
	return int32(i)
}

// Cred provides the credentials of a process on the other end of a
// connection.
type Cred struct {
	// PID is the process id of the process.
	PID ID
	// UID is the user id of the process.
	UID ID
	// GID is the group id of the process.
	GID ID
}

// Current provides information about the current process and user.
func Current() (Cred, *user.User, error) {
	u, err := user.Current()
	if err != nil {
		return Cred{}, nil, err
	}

	uid, _ := strconv.Atoi(u.Uid)
	gid, _ := strconv.Atoi(u.Gid)

	cred := Cred{
		PID: ID(os.Getpid()),
		UID: ID(uid),
		GID: ID(gid),
	}
	return cred, u, nil
}

// PeerCred returns the credentials of the process on the remote end of the
// connection. A server can use this to authenticate connecting clients. This
// is a getsockopt query of kernel bookkeeping, not SCM_RIGHTS message
// passing, so it works on any connected stream.
func (s *Stream) PeerCred() (Cred, error) {
	defer runtime.KeepAlive(s.fd)
	return readCreds(s.fd.raw)
}
