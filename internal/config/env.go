package config

import (
	"sort"
	"strconv"
	"strings"
)

// EnvPrefix marks the environment variables read by LoadEnv.
const EnvPrefix = "SHELLMENU_"

// Env holds overrides read from SHELLMENU_* variables.
type Env struct {
	ConfigPath string // SHELLMENU_CONFIG: config file path or name
	BaseDir    string // SHELLMENU_BASE_DIR

	ScriptsDir string // SHELLMENU_SCRIPTS_DIR
	Launcher   string // SHELLMENU_LAUNCHER
	Output     string // SHELLMENU_OUTPUT
	MenuKey    string // SHELLMENU_MENU_KEY
	MenuLabel  string // SHELLMENU_MENU_LABEL
	Icon       string // SHELLMENU_ICON
	Encoding   string // SHELLMENU_ENCODING

	LogLevel string // SHELLMENU_LOG_LEVEL
	LogFile  string // SHELLMENU_LOG_FILE

	DPI     int // SHELLMENU_DPI
	Workers int // SHELLMENU_WORKERS
}

// knownEnvVars lists valid SHELLMENU_* variables, used to flag typos.
var knownEnvVars = map[string]bool{
	"SHELLMENU_CONFIG":      true,
	"SHELLMENU_BASE_DIR":    true,
	"SHELLMENU_SCRIPTS_DIR": true,
	"SHELLMENU_LAUNCHER":    true,
	"SHELLMENU_OUTPUT":      true,
	"SHELLMENU_MENU_KEY":    true,
	"SHELLMENU_MENU_LABEL":  true,
	"SHELLMENU_ICON":        true,
	"SHELLMENU_ENCODING":    true,
	"SHELLMENU_LOG_LEVEL":   true,
	"SHELLMENU_LOG_FILE":    true,
	"SHELLMENU_DPI":         true,
	"SHELLMENU_WORKERS":     true,
}

// LoadEnv reads SHELLMENU_* values through getenv (os.Getenv in production).
// Non-numeric or non-positive DPI and worker values are ignored.
func LoadEnv(getenv func(string) string) *Env {
	env := &Env{
		ConfigPath: getenv("SHELLMENU_CONFIG"),
		BaseDir:    getenv("SHELLMENU_BASE_DIR"),
		ScriptsDir: getenv("SHELLMENU_SCRIPTS_DIR"),
		Launcher:   getenv("SHELLMENU_LAUNCHER"),
		Output:     getenv("SHELLMENU_OUTPUT"),
		MenuKey:    getenv("SHELLMENU_MENU_KEY"),
		MenuLabel:  getenv("SHELLMENU_MENU_LABEL"),
		Icon:       getenv("SHELLMENU_ICON"),
		Encoding:   getenv("SHELLMENU_ENCODING"),
		LogLevel:   getenv("SHELLMENU_LOG_LEVEL"),
		LogFile:    getenv("SHELLMENU_LOG_FILE"),
	}

	if v, err := strconv.Atoi(getenv("SHELLMENU_DPI")); err == nil && v > 0 {
		env.DPI = v
	}
	if v, err := strconv.Atoi(getenv("SHELLMENU_WORKERS")); err == nil && v > 0 {
		env.Workers = v
	}

	return env
}

// Apply overlays every set variable onto cfg. Environment values win over
// the config file; flags are applied afterwards by each command.
func (e *Env) Apply(cfg *Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	set(&cfg.BaseDir, e.BaseDir)
	set(&cfg.Generator.ScriptsDir, e.ScriptsDir)
	set(&cfg.Generator.Launcher, e.Launcher)
	set(&cfg.Generator.Output, e.Output)
	set(&cfg.Generator.Encoding, e.Encoding)
	set(&cfg.Menu.Key, e.MenuKey)
	set(&cfg.Menu.Label, e.MenuLabel)
	set(&cfg.Menu.Icon, e.Icon)
	set(&cfg.Log.Level, e.LogLevel)
	set(&cfg.Log.File, e.LogFile)

	if e.DPI > 0 {
		cfg.Tools.PDFImages.DPI = e.DPI
	}
	if e.Workers > 0 {
		cfg.Tools.PDFImages.Workers = e.Workers
	}
}

// UnknownEnvVars returns the SHELLMENU_* names in environ that LoadEnv does
// not read, sorted. environ has the os.Environ format.
func UnknownEnvVars(environ []string) []string {
	var unknown []string
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, EnvPrefix) && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// Load resolves the config for an executable: explicit path from flag or
// SHELLMENU_CONFIG if given (must exist), otherwise the default name when
// present, then environment overrides. The result is validated.
func Load(flagPath string, getenv func(string) string) (*Config, error) {
	env := LoadEnv(getenv)

	path := flagPath
	if path == "" {
		path = env.ConfigPath
	}

	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = LoadConfig(path)
	} else {
		cfg, err = LoadOptional(DefaultName)
	}
	if err != nil {
		return nil, err
	}

	env.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
