package main

import (
	"github.com/spf13/cobra"

	"github.com/glintui/glint/internal/logger"
)

type rootFlags struct {
	verbose   bool
	themePath string
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "glint",
		Short:         "Glint is a themed terminal UI component kit",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand launches the component gallery.
			if len(args) == 0 {
				return runGallery(flags, log)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.themePath, "theme", "t", "", "Path to a theme definition file")

	cmd.AddCommand(newGalleryCmd(flags, log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
