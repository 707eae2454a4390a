package main

import (
	"fmt"
	"io"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-shellmenu/internal/cli"
	"github.com/alnah/go-shellmenu/internal/config"
)

// generatorFlags holds every generator flag. Empty values leave the config
// untouched.
type generatorFlags struct {
	config  string
	quiet   bool
	verbose bool
	help    bool
	version bool

	baseDir    string
	scriptsDir string
	launcher   string
	output     string
	patterns   []string

	menuKey   string
	menuLabel string
	icon      string
	targets   []string

	encoding   string
	lineEnding string

	uninstall   string
	stdout      bool
	writeConfig string
}

// parseFlags parses args without the program name.
func parseFlags(args []string) (*generatorFlags, []string, error) {
	f := &generatorFlags{}
	fset := flag.NewFlagSet("shellmenu", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	fset.Usage = func() {}

	fset.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fset.BoolVarP(&f.quiet, "quiet", "q", false, "only print errors")
	fset.BoolVarP(&f.verbose, "verbose", "v", false, "print debug details")
	fset.BoolVarP(&f.help, "help", "h", false, "show help")
	fset.BoolVar(&f.version, "version", false, "show version")

	fset.StringVar(&f.baseDir, "base-dir", "", "directory relative config paths resolve against")
	fset.StringVar(&f.scriptsDir, "scripts-dir", "", "directory scanned for scripts")
	fset.StringVar(&f.launcher, "launcher", "", "dispatcher executable every item calls")
	fset.StringVarP(&f.output, "output", "o", "", ".reg file to write")
	fset.StringArrayVar(&f.patterns, "pattern", nil, "script file filter (repeatable)")

	fset.StringVar(&f.menuKey, "menu-key", "", "registry key of the submenu")
	fset.StringVar(&f.menuLabel, "menu-label", "", "label shown in Explorer")
	fset.StringVar(&f.icon, "icon", "", "submenu icon")
	fset.StringArrayVar(&f.targets, "target", nil, "class the menu is registered for (repeatable)")

	fset.StringVar(&f.encoding, "encoding", "", "utf-8 or utf-16le")
	fset.StringVar(&f.lineEnding, "line-ending", "", "lf or crlf")

	fset.StringVar(&f.uninstall, "uninstall", "", "also write a removal .reg file")
	fset.BoolVar(&f.stdout, "stdout", false, "print the .reg content instead of writing it")
	fset.StringVar(&f.writeConfig, "write-config", "", "save the effective config and exit")

	if err := fset.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	return f, fset.Args(), nil
}

// apply overlays the set flags onto cfg. Flag paths are relative to the
// current directory, not baseDir, so they are made absolute first.
func (f *generatorFlags) apply(cfg *config.Config) {
	setPath := func(dst *string, v string) {
		if v == "" {
			return
		}
		if abs, err := filepath.Abs(v); err == nil {
			v = abs
		}
		*dst = v
	}
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	setPath(&cfg.BaseDir, f.baseDir)
	setPath(&cfg.Generator.ScriptsDir, f.scriptsDir)
	setPath(&cfg.Generator.Launcher, f.launcher)
	setPath(&cfg.Generator.Output, f.output)
	setPath(&cfg.Menu.Icon, f.icon)

	set(&cfg.Menu.Key, f.menuKey)
	set(&cfg.Menu.Label, f.menuLabel)
	set(&cfg.Generator.Encoding, f.encoding)
	set(&cfg.Generator.LineEnding, f.lineEnding)

	if len(f.patterns) > 0 {
		cfg.Generator.Patterns = f.patterns
	}
	if len(f.targets) > 0 {
		cfg.Menu.Targets = f.targets
	}
}
