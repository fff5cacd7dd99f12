// Package main provides the entry point for pomolight.
//
// pomolight is a terminal Pomodoro timer that mirrors the current session
// on a single RGB status light.
//
// Usage:
//
//	pomolight [command] [flags]
package main

import "github.com/riordanpawley/pomolight/internal/cli"

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cli.Execute(version)
}
