package main

import (
	"os"

	"bloggers/service"
)

var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches os.Args to the service commands and exits with their
// status.
func RealMain() {
	exit(service.HandleCommand(os.Args[1:]))
}
