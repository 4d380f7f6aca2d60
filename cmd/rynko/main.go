package main

import (
	"os"

	"github.com/rynko-dev/rynko-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
