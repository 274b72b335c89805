package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	doneColor   = color.New(color.Bold, color.FgHiGreen)
	secretColor = color.New(color.FgHiCyan)
)

func printDone(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintln(cmd.OutOrStdout(), "✅ "+doneColor.Sprintf(format, args...))
}
