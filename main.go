// Package main is the entry point for the mockauth CLI.
// It hosts an in-memory mock authentication store behind a small command shell.
package main

import (
	"mockauth/cli/cmd"
)

func main() {
	cmd.Execute()
}
