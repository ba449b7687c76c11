package service

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"bloggers/app/repositories"
	"bloggers/app/routes"

	"github.com/gorilla/mux"
)

// Version is reported by the version command.
const Version = "1.0.0"

// HandleCommand runs a CLI command and returns its exit code.
func HandleCommand(args []string) int {
	if len(args) < 1 {
		printHelp()
		return 1
	}

	cmd := strings.ToLower(args[0])
	switch cmd {
	case "serve":
		if err := RunAppServer(args[1:]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return 1
		}
		return 0
	case "routes":
		if err := printRoutes(os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
			return 1
		}
		return 0
	case "version":
		fmt.Printf("bloggers version %s\n", Version)
		return 0
	case "help":
		printHelp()
		return 0
	default:
		fmt.Printf("Unknown command: %s\n\n", args[0])
		printHelp()
		return 1
	}
}

// printHelp prints the usage of every command.
func printHelp() {
	helpText := `Usage: bloggers <command> [options]

Commands:
  serve [--config <file>] [--addr <host:port>] [--log <level>]
                                  Run the bloggers API server
  routes                          List the API routes
  version                         Show version information
  help                            Display this help message
`
	fmt.Println(helpText)
}

// printRoutes writes one "METHOD PATH" line per API route.
func printRoutes(w io.Writer) error {
	repo, err := repositories.NewRepository()
	if err != nil {
		return err
	}
	defer repo.Close()

	router := routes.SetupRoutes(repo.Bloggers, repo.Posts)

	var lines []string
	err = router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		tpl, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			// prefix-only subrouter
			return nil
		}
		for _, m := range methods {
			lines = append(lines, fmt.Sprintf("%-7s %s", m, tpl))
		}
		return nil
	})
	if err != nil {
		return err
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return strings.Fields(lines[i])[1] < strings.Fields(lines[j])[1]
	})
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}
