package main

import (
	"github.com/appearnetworks/aiq-sdk-go/internal/cli"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
