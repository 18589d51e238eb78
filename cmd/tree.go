package cmd

import (
	"fmt"
	"path/filepath"

	"gprepo/pkg/combine"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newTreeCmd lists the files a full run would include, as a tree.
func (a *app) newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Show which files would be included",
		Long:  `Apply the same selection as a full run and print the included files as a directory tree, without reading or writing any content.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, oracle, err := a.selection()
			if err != nil {
				return err
			}

			paths, summary, err := combine.Collect(args, oracle, a.logger)
			if err != nil {
				return err
			}
			a.logger.Debug("Collected files for tree",
				zap.Int("scanned", summary.Scanned),
				zap.Int("included", summary.Included))

			_, err = fmt.Fprint(cmd.OutOrStdout(), combine.RenderTree(filepath.Base(args.Root), paths))
			return err
		},
	}
}
