package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-shellmenu/internal/config"
	"github.com/alnah/go-shellmenu/internal/logging"
	"github.com/alnah/go-shellmenu/internal/tools"
)

// Factory builds a tool from the loaded config. The returned close function
// releases collaborators such as a browser or a WebAssembly pool; it may be nil.
type Factory func(cfg *config.Config, logger *log.Logger) (tools.Tool, func() error, error)

// toolFlags holds the flags every tool accepts.
type toolFlags struct {
	configPath string
	verbose    bool
	quiet      bool
	help       bool
	version    bool
}

// RunTool runs a single-path tool and returns its exit code. The only
// positional argument is the path Explorer passes for "%1".
func RunTool(name, version string, factory Factory, env *Environment) int {
	flags, args, usage, err := parseToolFlags(name, env.Args)
	if err != nil {
		fmt.Fprintf(env.Stderr, "%s: %v\n\n%s", name, err, usage)
		return ExitCodeFor(err)
	}
	if flags.help {
		fmt.Fprint(env.Stdout, usage)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "%s %s\n", name, version)
		return ExitSuccess
	}
	if len(args) != 1 {
		err := fmt.Errorf("%w: expected exactly one path, got %d", ErrUsage, len(args))
		fmt.Fprintf(env.Stderr, "%s: %v\n\n%s", name, err, usage)
		return ExitCodeFor(err)
	}

	cfg, err := config.Load(flags.configPath, env.Getenv)
	if err != nil {
		fmt.Fprintf(env.Stderr, "%s: %v%s\n", name, err, HintFor(err, nil))
		return ExitCodeFor(err)
	}

	logger, closeLog, err := logging.New(logging.Options{
		Prefix:  name,
		Level:   cfg.Log.Level,
		File:    cfg.ResolvePath(cfg.Log.File),
		Verbose: flags.verbose,
		Quiet:   flags.quiet,
		Stderr:  env.Stderr,
	})
	if err != nil {
		fmt.Fprintf(env.Stderr, "%s: %v\n", name, err)
		return ExitCodeFor(err)
	}
	defer func() { _ = closeLog() }()

	WarnUnknownEnv(logger, env.Environ())
	if cfg.Source != "" {
		logger.Debug("config loaded", "path", cfg.Source)
	}

	out, err := runTool(cfg, logger, factory, args[0])
	if err != nil {
		logger.Error(err.Error() + HintFor(err, cfg))
		return ExitCodeFor(err)
	}
	fmt.Fprintln(env.Stdout, out)
	return ExitSuccess
}

// runTool checks the input, builds the tool and runs it under a signal-aware context.
func runTool(cfg *config.Config, logger *log.Logger, factory Factory, input string) (string, error) {
	if err := checkInput(input, os.Stat); err != nil {
		return "", err
	}

	tool, closeTool, err := factory(cfg, logger)
	if err != nil {
		return "", err
	}
	if closeTool != nil {
		defer func() {
			if err := closeTool(); err != nil {
				logger.Warn("cleanup failed", "err", err)
			}
		}()
	}

	ctx, stop := NotifyContext(context.Background())
	defer stop()

	logger.Debug("running", "tool", tool.Name(), "input", input)
	out, err := tool.Run(ctx, input)
	if err != nil {
		return "", err
	}
	logger.Info("done", "output", out)
	return out, nil
}

// checkInput fails only when input does not exist. Other stat errors, such
// as a denied permission, are left to the tool: generate_info still reports
// on paths it cannot read.
func checkInput(input string, stat func(string) (fs.FileInfo, error)) error {
	if _, err := stat(input); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", tools.ErrInputNotFound, input)
	}
	return nil
}

// WarnUnknownEnv logs one warning per SHELLMENU_* variable nobody reads,
// which is usually a typo.
func WarnUnknownEnv(logger *log.Logger, environ []string) {
	for _, name := range config.UnknownEnvVars(environ) {
		logger.Warn("unknown environment variable ignored", "name", name)
	}
}

// parseToolFlags parses args (program name first) and returns the usage text
// alongside, so callers can print it on errors.
func parseToolFlags(name string, args []string) (*toolFlags, []string, string, error) {
	flags := &toolFlags{}
	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.SetOutput(io.Discard) // RunTool reports errors itself

	fset.StringVarP(&flags.configPath, "config", "c", "", "config file path or name")
	fset.BoolVarP(&flags.verbose, "verbose", "v", false, "log debug details")
	fset.BoolVarP(&flags.quiet, "quiet", "q", false, "only log errors")
	fset.BoolVarP(&flags.help, "help", "h", false, "show this help")
	fset.BoolVar(&flags.version, "version", false, "print the version")

	usage := fmt.Sprintf("Usage: %s [flags] <path>\n\nFlags:\n%s", name, fset.FlagUsages())

	if len(args) > 0 {
		args = args[1:]
	}
	if err := fset.Parse(args); err != nil {
		return nil, nil, usage, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return flags, fset.Args(), usage, nil
}
