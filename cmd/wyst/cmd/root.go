package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dev-orus/wyst/internal/cli"
	"github.com/dev-orus/wyst/internal/config"
)

var (
	noColor    bool
	projectDir string
)

var rootCmd = &cobra.Command{
	Use:   "wyst",
	Short: "Wyst language toolchain",
	Long: `wyst is the front end of the Wyst programming language.

It tokenizes and parses Wyst source into a flat, classified AST and a
symbol table consumed by outline, completion, and downstream tooling.

Commands:
  parse    - parse a file and print its AST nodes
  tokens   - dump the token stream of a file
  outline  - print the declared symbols of a file
  lsp      - run the language server over stdio`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		cli.ColorEnabled = cfg.ColorEnabled(cli.ColorEnabled)
		if noColor {
			cli.ColorEnabled = false
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable ANSI color output")
	rootCmd.PersistentFlags().StringVar(&projectDir, "project", ".", "Project directory containing wyst.yaml")
}

// loadConfig reads wyst.yaml from the project directory, falling back to
// a zero config on any error.
func loadConfig() *config.Config {
	cfg, err := config.Load(projectDir)
	if err != nil {
		return &config.Config{}
	}
	return cfg
}
