// main package for modlift command-line tool
// Package main is the entry point for the modlift CLI.
package main

import "modlift.dev/pkg/modlift/cmd"

func main() {
	cmd.Execute()
}
