package cmd

import (
	"github.com/spf13/cobra"
)

// GetCommands returns all commands for registration
func GetCommands() []*cobra.Command {
	return []*cobra.Command{
		newClassifyCmd(),
		newEntityCmd(),
		newSuggestCmd(),
		newScanCmd(),
		newWatchCmd(),
		newActionsCmd(),
		newConfigCmd(),
		newVersionCmd(),
	}
}
