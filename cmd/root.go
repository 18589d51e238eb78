package cmd

import (
	"gprepo/pkg/combine"
	"gprepo/pkg/gitrepo"
	"gprepo/pkg/logging"
	"gprepo/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "gprepo"

// options holds the values bound to command-line flags.
type options struct {
	repoPath string
	preamble string
	output   string
	ignore   []string
	debug    bool
}

// app carries state shared by the command tree.
type app struct {
	logger *zap.Logger
	opts   options
}

// NewRootCmd builds the gprepo command tree. Flag defaults come from
// GPREPO_* environment variables.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &app{logger: logger}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "gprepo serializes a git repository into one LLM-ready text stream",
		Long: `gprepo walks the working tree of a git repository, skips files ignored by git,
by built-in or user globs, and binary files, compacts whitespace, and writes
every remaining file between @@@@<path>@@@@ markers, ending with @@@@END@@@@.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setupLogging,
		RunE:              a.runCombine,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.opts.repoPath, "repo-path", "r", envString(envRepoPath), "Path to the repository (default: current directory)")
	flags.StringArrayVarP(&a.opts.ignore, "ignore", "i", envList(envIgnore), "Glob of file paths to ignore (repeatable)")
	flags.BoolVar(&a.opts.debug, "debug", envBool(envDebug), "Enable debug logging")

	rootCmd.Flags().StringVarP(&a.opts.preamble, "preamble", "p", envString(envPreamble), "Optional path to the preamble file")
	rootCmd.Flags().StringVarP(&a.opts.output, "output", "o", envString(envOutput), "Output file path (default: stdout)")

	rootCmd.AddCommand(a.newTreeCmd(), newVersionCmd())
	return rootCmd
}

// Execute loads .env, then runs the root command with os.Args.
func Execute(logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	loadDotEnv(logger)
	return NewRootCmd(logger).Execute()
}

func (a *app) setupLogging(cmd *cobra.Command, _ []string) error {
	if !a.opts.debug {
		return nil
	}
	logger, err := logging.Setup(true, appName, version.Get().Version)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("Debug logging enabled", zap.String("command", cmd.Name()))
	return nil
}

// selection compiles the ignore globs and discovers the repository; the
// shared first half of every command that scans the tree. Globs are compiled
// here so a bad pattern fails before any output file is created.
func (a *app) selection() (combine.Arguments, combine.IgnoreOracle, error) {
	rules, err := combine.NewIgnoreRuleSet(a.opts.ignore, a.logger)
	if err != nil {
		return combine.Arguments{}, nil, err
	}

	repo, err := gitrepo.Discover(a.opts.repoPath)
	if err != nil {
		return combine.Arguments{}, nil, err
	}
	oracle, err := repo.IgnoreOracle()
	if err != nil {
		return combine.Arguments{}, nil, err
	}
	a.logger.Debug("Discovered repository", zap.String("root", repo.Root()))

	return combine.Arguments{
		Root:           repo.Root(),
		IgnorePatterns: a.opts.ignore,
		IgnoreRules:    rules,
	}, oracle, nil
}
