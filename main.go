// Package main provides the entry point for the movie catalog API.
package main

import (
	"fmt"
	"os"

	"moviehub/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.Error().Err(err).Msg("Command failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
