// Package main is the entry point for the Tokopedia client API server.
package main

import (
	"os"

	"github.com/tokoclient/backend/cmd/server/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
