package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// attachedToTerminal reports whether both stdin and stdout are terminals.
func attachedToTerminal(cmd *cobra.Command) bool {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(in.Fd())) {
		return false
	}
	return supportsUnicode(cmd.OutOrStdout())
}
