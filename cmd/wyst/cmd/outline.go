package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dev-orus/wyst/internal/parser"
	"github.com/dev-orus/wyst/internal/symbols"
)

var outlineCmd = &cobra.Command{
	Use:   "outline <file>",
	Short: "Print the declared symbols of a Wyst file",
	Args:  cobra.ExactArgs(1),
	RunE:  runOutline,
}

func init() {
	rootCmd.AddCommand(outlineCmd)
}

var (
	outlineHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	outlineKind   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Width(10)
	outlinePos    = lipgloss.NewStyle().Faint(true).Width(8)
	outlineDoc    = lipgloss.NewStyle().Faint(true).Italic(true)
)

func runOutline(cmd *cobra.Command, args []string) error {
	tokens, err := tokenizeFile(args[0])
	if err != nil {
		return err
	}

	table := symbols.NewTable()
	parser.New(tokens, table).Parse()

	if table.Len() == 0 {
		fmt.Println("no declarations")
		return nil
	}

	fmt.Println(outlineHeader.Render(fmt.Sprintf("%s — %d symbols", args[0], table.Len())))
	for _, sym := range table.All() {
		line := outlineKind.Render(sym.Kind.String()) +
			fmt.Sprintf(" %-24s ", sym.Name) +
			outlinePos.Render(sym.Pos.String())
		if sym.Doc != "" {
			line += " " + outlineDoc.Render(sym.Doc)
		}
		fmt.Println(line)
	}
	return nil
}
