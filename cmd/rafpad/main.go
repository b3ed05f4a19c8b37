package main

import (
	"rafpad-cli/internal/cli"
)

func main() {
	cli.Execute()
}
