// Client sends one message to the echo server and prints what comes back.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/johnsiilver/uds"
)

var (
	addr = flag.String("addr", "", "The path to the unix socket to dial")
	msg  = flag.String("msg", "hello", "The message to send")
)

func main() {
	flag.Parse()

	if *addr == "" {
		fmt.Println("did not pass --addr")
		os.Exit(1)
	}

	client, err := uds.Connect(*addr)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if _, err := client.Write([]byte(*msg)); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	// The server echoes until we shut our write half down.
	if err := client.Shutdown(uds.ShutWrite); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	// Prints whatever the server sends until the connection is closed.
	io.Copy(os.Stdout, client)
	fmt.Println()
	client.Close()
}
