// Server echoes back whatever a client sends, one goroutine per accepted
// connection, and only talks to clients running as the same user.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/johnsiilver/uds"
)

func main() {
	socketAddr := filepath.Join(os.TempDir(), uuid.New().String())
	defer os.Remove(socketAddr)

	cred, _, err := uds.Current()
	if err != nil {
		panic(err)
	}

	l, err := uds.Listen(socketAddr)
	if err != nil {
		panic(err)
	}
	defer l.Close()

	fmt.Println("Listening on socket: ", socketAddr)

	// The iterator never ends; killing the process is our stopping condition.
	in := l.Incoming()
	for {
		conn, err := in.Next()
		if err != nil {
			// A single failed accept doesn't take the listener down.
			log.Println("accept: ", err)
			continue
		}

		// We spin off handling of this connection to its own goroutine and
		// go back to waiting for another connection.
		go func() {
			defer conn.Close()

			// We are checking the client's user ID to make sure it is the
			// same user ID or we reject it.
			peer, err := conn.PeerCred()
			if err != nil {
				log.Println("could not read peer creds, rejecting conn: ", err)
				return
			}
			if peer.UID != cred.UID {
				log.Printf("rejecting conn from uid %v", peer.UID)
				return
			}

			if _, err := io.Copy(conn, conn); err != nil {
				log.Println("echo: ", err)
			}
		}()
	}
}
