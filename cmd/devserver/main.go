// Command devserver runs the upload handler behind a plain HTTP server for
// local development.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "devserver",
		Short: "Run the upload function locally",
		Long: `devserver serves the upload Lambda handler over plain HTTP.

Requests to /api/upload are converted to API Gateway proxy events, so
multipart forms and JSON bodies behave exactly as they do behind
API Gateway. Prometheus metrics are exposed on /metrics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
