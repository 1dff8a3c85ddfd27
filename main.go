// main is the entry point for the decomp CLI.
package main

import (
	"os"

	"github.com/mmmkit/decomp/cmd"
	"github.com/mmmkit/decomp/internal/contract"
	"github.com/mmmkit/decomp/internal/metrics"
	"github.com/mmmkit/decomp/internal/runstore"
)

func main() {
	if err := run(); err != nil {
		contract.Logger().Error().Err(err).Msg("decomp failed")
		os.Exit(1)
	}
}

// run keeps the deferred cleanup ahead of os.Exit.
func run() error {
	defer runstore.CloseStores()
	defer func() {
		if err := metrics.Default.WriteTextfile(cmd.MetricsFile()); err != nil {
			contract.LogWarn("Failed to write metrics file", err)
		}
	}()
	return cmd.Execute()
}
