// Command run_silent is the dispatcher every context-menu item calls:
//
//	run_silent.exe <script> <target>
//
// It runs the script with the right-clicked path as its only argument,
// without a console window, and exits with the script's exit code. Its own
// failures exit 1 and are written to the configured log file, since nobody
// sees stderr of a hidden process.
//
// Build it for the Windows GUI subsystem, otherwise Explorer opens a console
// window for the launcher itself on every click:
//
//	GOOS=windows go build -ldflags "-H=windowsgui" ./cmd/run_silent
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-shellmenu/internal/cli"
	"github.com/alnah/go-shellmenu/internal/config"
	"github.com/alnah/go-shellmenu/internal/logging"
	"github.com/alnah/go-shellmenu/internal/process"
)

const name = "run_silent"

// exitFailure is returned for the launcher's own failures. Scripts' codes
// pass through unchanged.
const exitFailure = 1

func main() {
	os.Exit(run(cli.DefaultEnv(), os.Executable))
}

func run(env *cli.Environment, executable func() (string, error)) int {
	if len(env.Args) < 3 {
		fmt.Fprintf(env.Stderr, "Usage: %s <script> <target>\n", name)
		return exitFailure
	}
	script, target := env.Args[1], env.Args[2]

	cfg, err := config.Load("", env.Getenv)
	if err != nil {
		fmt.Fprintf(env.Stderr, "%s: %v\n", name, err)
		return exitFailure
	}

	logger, closeLog, err := logging.New(logging.Options{
		Prefix: name,
		Level:  cfg.Log.Level,
		File:   cfg.ResolvePath(cfg.Log.File),
		Stderr: env.Stderr,
	})
	if err != nil {
		fmt.Fprintf(env.Stderr, "%s: %v\n", name, err)
		return exitFailure
	}
	defer func() { _ = closeLog() }()

	cli.WarnUnknownEnv(logger, env.Environ())

	program, args, err := process.Command(script, target, cfg.InterpreterFor)
	if err != nil {
		logger.Error("cannot run script", "script", script, "err", err)
		return exitFailure
	}

	dir := workDir(cfg, executable)
	logger.Debug("starting", "program", program, "args", args, "dir", dir)

	ctx, stop := cli.NotifyContext(context.Background())
	defer stop()

	code, err := process.Run(ctx, process.Spec{
		Name:   program,
		Args:   args,
		Dir:    dir,
		Stdout: env.Stdout,
		Stderr: env.Stderr,
	})
	if err != nil {
		logger.Error("launch failed", "program", program, "err", err)
		return exitFailure
	}
	if code != 0 {
		logger.Warn("script failed", "script", filepath.Base(script), "target", target, "code", code)
	}
	return code
}

// workDir picks launcher.workDir, then baseDir, then the launcher's own folder.
func workDir(cfg *config.Config, executable func() (string, error)) string {
	if cfg.Launcher.WorkDir != "" {
		return cfg.ResolvePath(cfg.Launcher.WorkDir)
	}
	if cfg.BaseDir != "" {
		return cfg.BaseDir
	}
	if exe, err := executable(); err == nil {
		return filepath.Dir(exe)
	}
	return ""
}
