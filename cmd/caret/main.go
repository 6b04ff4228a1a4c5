package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"caret/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "caret",
	Short:         "Render annotated source diagnostics",
	Long:          `caret renders compiler-style diagnostic reports: labeled source spans drawn with underlines, connector lanes and multiline brackets`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

func main() {
	rootCmd.Version = version.Full()
	rootCmd.AddCommand(renderCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
