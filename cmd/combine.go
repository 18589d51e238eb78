package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"gprepo/pkg/combine"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runCombine validates configuration, discovers the repository, opens the
// destination and streams the combined output into it.
func (a *app) runCombine(cmd *cobra.Command, _ []string) (err error) {
	startTime := time.Now()

	preamble, err := readPreamble(a.opts.preamble)
	if err != nil {
		return err
	}

	args, oracle, err := a.selection()
	if err != nil {
		return err
	}
	args.Preamble = preamble
	args.Output = a.opts.output
	args.StartTime = startTime

	var out io.Writer = cmd.OutOrStdout()
	if a.opts.output != "" {
		outFile, createErr := os.Create(a.opts.output)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer func() {
			if closeErr := outFile.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("failed to close output file: %w", closeErr)
			}
		}()
		out = outFile
	}

	summary, err := combine.Run(args, oracle, out, a.logger)
	if err != nil {
		return err
	}

	if a.opts.output != "" {
		a.logger.Info("Successfully combined files",
			zap.String("outputFile", a.opts.output),
			zap.Int("totalFiles", summary.Included))
	}
	return nil
}

// readPreamble returns the verbatim contents of path, or DefaultPreamble
// when no path is given.
func readPreamble(path string) (string, error) {
	if path == "" {
		return combine.DefaultPreamble, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read preamble file: %w", err)
	}
	return string(data), nil
}
