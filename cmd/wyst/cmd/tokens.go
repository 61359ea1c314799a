package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the token stream of a Wyst file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	tokens, err := tokenizeFile(args[0])
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		fmt.Println(tok)
	}
	return nil
}
