package main

import (
	"uploadhub/internal/cli"
)

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
