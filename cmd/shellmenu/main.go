// Command shellmenu generates the .reg file that installs the context menu.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	shellmenu "github.com/alnah/go-shellmenu"
	"github.com/alnah/go-shellmenu/internal/cli"
	"github.com/alnah/go-shellmenu/internal/config"
	"github.com/alnah/go-shellmenu/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(cli.DefaultEnv()))
}

// runMain runs the generator and returns the exit code.
func runMain(env *cli.Environment) int {
	var args []string
	if len(env.Args) > 0 {
		args = env.Args[1:]
	}

	flags, positional, err := parseFlags(args)
	if err != nil {
		printError(env, err, nil)
		return cli.ExitCodeFor(err)
	}
	if flags.help {
		printUsage(env.Stdout)
		return cli.ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "shellmenu %s\n", Version)
		return cli.ExitSuccess
	}
	if len(positional) > 0 {
		err := fmt.Errorf("%w: unexpected argument %q", cli.ErrUsage, positional[0])
		printError(env, err, nil)
		return cli.ExitCodeFor(err)
	}

	cfg, err := loadConfig(flags, env)
	if err != nil {
		printError(env, err, nil)
		return cli.ExitCodeFor(err)
	}

	logger, closeLog, err := logging.New(logging.Options{
		Prefix:  "shellmenu",
		Level:   cfg.Log.Level,
		File:    cfg.ResolvePath(cfg.Log.File),
		Verbose: flags.verbose,
		Quiet:   flags.quiet,
		Stderr:  env.Stderr,
	})
	if err != nil {
		printError(env, err, cfg)
		return cli.ExitCodeFor(err)
	}
	defer func() { _ = closeLog() }()

	cli.WarnUnknownEnv(logger, env.Environ())
	if cfg.Source != "" {
		logger.Debug("config loaded", "path", cfg.Source)
	}

	if flags.writeConfig != "" {
		if err := config.Save(cfg, flags.writeConfig); err != nil {
			printError(env, err, cfg)
			return cli.ExitIO
		}
		if !flags.quiet {
			fmt.Fprintln(env.Stdout, successStyle.Render("Config written: "+flags.writeConfig))
		}
		return cli.ExitSuccess
	}

	opts := cfg.GeneratorOptions()
	logger.Debug("generating",
		"scripts", opts.ScriptsDir, "launcher", opts.LauncherPath, "patterns", opts.Patterns,
		"targets", opts.Menu.Targets, "encoding", opts.Encoding)

	if flags.stdout {
		return printDocument(env, opts, cfg)
	}

	doc, err := shellmenu.Generate(opts)
	if err != nil {
		printError(env, err, cfg)
		return cli.ExitCodeFor(err)
	}

	uninstall := flags.uninstall
	if uninstall != "" {
		if abs, err := filepath.Abs(uninstall); err == nil {
			uninstall = abs
		}
		if err := shellmenu.WriteUninstall(opts, uninstall); err != nil {
			printError(env, err, cfg)
			return cli.ExitCodeFor(err)
		}
	}

	if !flags.quiet {
		printSummary(env.Stdout, doc, opts.OutputPath, uninstall)
	}
	return cli.ExitSuccess
}

// loadConfig resolves the config with flags applied last, then validates it.
func loadConfig(flags *generatorFlags, env *cli.Environment) (*config.Config, error) {
	cfg, err := config.Load(flags.config, env.Getenv)
	if err != nil {
		return nil, err
	}
	flags.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// printDocument writes the encoded document to stdout without touching disk.
func printDocument(env *cli.Environment, opts shellmenu.Options, cfg *config.Config) int {
	doc, err := shellmenu.Build(opts)
	if err != nil {
		printError(env, err, cfg)
		return cli.ExitCodeFor(err)
	}
	data, err := doc.Encode(opts.Encoding, opts.LineEnding)
	if err == nil {
		_, err = env.Stdout.Write(data)
	}
	if err != nil {
		printError(env, err, cfg)
		return cli.ExitCodeFor(err)
	}
	return cli.ExitSuccess
}

// printError writes err with an actionable hint when one applies.
func printError(env *cli.Environment, err error, cfg *config.Config) {
	msg := err.Error()
	if errors.Is(err, cli.ErrUsage) {
		msg += "\nRun 'shellmenu --help' for usage."
	}
	fmt.Fprintln(env.Stderr, errorStyle.Render("Error: ")+msg+cli.HintFor(err, cfg))
}
