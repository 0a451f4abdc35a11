package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/brandonbloom/rwfile/internal/config"
	"github.com/brandonbloom/rwfile/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Run executes rwfile with args (excluding the program name) against the
// given streams and returns the process exit code. Failures are reported on
// stderr exactly once.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when args is nil.
		args = []string{}
	}

	cmd := newRootCommand()
	cmd.SetArgs(shieldCompletionRequest(cmd.Flags(), args))
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(stderr, err)
	}
	return ExitCode(err)
}

type rootOptions struct {
	configPath string
	color      string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "rwfile <file_path>",
		Short: "Print a text file or append a line to it",
		Long: `rwfile asks whether to read or write the given file.

Read (r) prints the file line by line. Write (w) reads one line from
standard input and appends it to the file, creating it if needed.

Exit codes: 1 I/O error, 2 file not found, 3 permission denied,
4 wrong number of arguments.`,
		Version:       version.String(),
		Args:          exactlyOnePath,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Every positional argument is a path; a "completion" subcommand
		// would make a file of that name unreachable.
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, args[0])
		},
	}

	flags := pflag.NewFlagSet("rwfile", pflag.ContinueOnError)
	flags.StringVar(&opts.configPath, "config", "", "path to the settings file (default $RWFILE_CONFIG or the user config dir)")
	flags.StringVar(&opts.color, "color", "", "colorize output: auto, always, or never")
	flags.StringVar(&opts.logLevel, "log-level", "", "diagnostic log level: debug, info, warn, or error")
	cmd.Flags().AddFlagSet(flags)

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError(c.Root().Name(), err)
	})
	return cmd
}

// shieldCompletionRequest inserts "--" before the first positional argument
// when it names cobra's hidden completion request command. cobra registers
// that command on demand whatever CompletionOptions say, so without the
// terminator `rwfile __complete x` would never reach exactlyOnePath.
func shieldCompletionRequest(flags *pflag.FlagSet, args []string) []string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return args
		case len(a) > 1 && strings.HasPrefix(a, "-"):
			if !strings.Contains(a, "=") && flagTakesValue(flags, a) {
				i++
			}
		case a == cobra.ShellCompRequestCmd || a == cobra.ShellCompNoDescRequestCmd:
			shielded := make([]string, 0, len(args)+1)
			shielded = append(shielded, args[:i]...)
			shielded = append(shielded, "--")
			return append(shielded, args[i:]...)
		default:
			return args
		}
	}
	return args
}

func flagTakesValue(flags *pflag.FlagSet, arg string) bool {
	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = flags.Lookup(name)
	} else if name := arg[1:]; len(name) == 1 {
		f = flags.ShorthandLookup(name)
	}
	return f != nil && f.NoOptDefVal == ""
}

func exactlyOnePath(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return usageError(cmd.Root().Name(), nil)
	}
	return nil
}

func runRoot(cmd *cobra.Command, opts *rootOptions, path string) error {
	cfg, source, err := loadSettings(cmd.Root().Name(), opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	u := newUI(out, cfg.Output.Color)
	logger := newLogger(cmd.ErrOrStderr(), cfg.SlogLevel(), cfg.Output.Color)
	logger.Debug("settings loaded", "source", source, "color", cfg.Output.Color)

	u.heading(path)
	in := bufio.NewReader(cmd.InOrStdin())
	selected, err := promptMode(in, u, cfg.Prompt.Mode)
	if err != nil {
		return inputError(err)
	}
	logger.Debug("mode selected", "mode", selected, "path", path)

	ctx := cmd.Context()
	switch selected {
	case modeRead:
		return traced(ctx, "read", func() error {
			return runRead(u, logger, path)
		})
	case modeWrite:
		return traced(ctx, "write", func() error {
			return runWrite(in, u, logger, path, cfg.Prompt.Text)
		})
	default:
		panic(fmt.Sprintf("unhandled mode %q", selected))
	}
}

// loadSettings merges the settings file with command-line overrides. Flag
// values are checked before the file is touched so that a bad flag is a
// usage error.
func loadSettings(name string, opts *rootOptions) (config.Config, string, error) {
	var color config.ColorMode
	if opts.color != "" {
		mode, err := config.ParseColorMode(opts.color)
		if err != nil {
			return config.Config{}, "", usageError(name, fmt.Errorf("--color: %w", err))
		}
		color = mode
	}
	if opts.logLevel != "" {
		if _, err := config.ParseLogLevel(opts.logLevel); err != nil {
			return config.Config{}, "", usageError(name, fmt.Errorf("--log-level: %w", err))
		}
	}

	source := opts.configPath
	if source == "" {
		source = config.DefaultPath()
	}
	cfg, err := config.Load(source)
	if err != nil {
		return config.Config{}, "", &exitError{code: ExitIO, msg: "Error loading settings", err: err}
	}

	if color != "" {
		cfg.Output.Color = color
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	return cfg, source, nil
}
