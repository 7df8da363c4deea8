package main

import (
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/laptopprice/internal/version"
)

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "modelcheck",
		Short:        "Inspect laptop price model artifacts",
		Version:      version.String(),
		SilenceUsage: true,
	}
	root.AddCommand(inspectCommand(), predictCommand())
	return root
}
