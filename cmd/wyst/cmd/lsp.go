package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dev-orus/wyst/internal/lsp"
)

var lspCmd = &cobra.Command{
	Use:   "lsp",
	Short: "Run the Wyst language server over stdio",
	Long: `Runs the language server speaking LSP over stdin/stdout.

The server advertises completion (triggered on "::") and document
symbols, reparsing each open document on every change. Logs go to
stderr, or to lsp.log_file from wyst.yaml when set.`,
	RunE: runLSP,
}

func init() {
	rootCmd.AddCommand(lspCmd)
}

func runLSP(cmd *cobra.Command, args []string) error {
	server := lsp.NewServer(lsp.NewTransport(os.Stdin, os.Stdout))

	cfg := loadConfig()
	if cfg.LSP.LogFile != "" {
		f, err := os.OpenFile(cfg.LSP.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening lsp log file: %w", err)
		}
		defer f.Close()
		server.SetLogOutput(f)
	}

	return server.Run()
}
