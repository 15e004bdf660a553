package main

import (
	"fmt"
	"os"

	"todo-list/internal/cli"
)

func main() {
	root := cli.NewRootCommand(cli.OpenPage)

	err := root.Execute()
	if closeErr := root.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cli.NewErrorHandler().HandleSimple(err))
		os.Exit(1)
	}
}
