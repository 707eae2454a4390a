package config

// Notes:
// - LoadEnv takes a getenv function, so tests use a map instead of t.Setenv
//   and can run in parallel.

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"
)

func mapEnv(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

// ---------------------------------------------------------------------------
// TestLoadEnv - Variable parsing
// ---------------------------------------------------------------------------

func TestLoadEnv(t *testing.T) {
	t.Parallel()

	env := LoadEnv(mapEnv(map[string]string{
		"SHELLMENU_CONFIG":      "/etc/shellmenu.yaml",
		"SHELLMENU_BASE_DIR":    `C:\ctx`,
		"SHELLMENU_SCRIPTS_DIR": "scripts",
		"SHELLMENU_LAUNCHER":    "launch.exe",
		"SHELLMENU_OUTPUT":      "menu.reg",
		"SHELLMENU_MENU_KEY":    "Tools",
		"SHELLMENU_MENU_LABEL":  "My Tools",
		"SHELLMENU_ICON":        "menu.ico",
		"SHELLMENU_ENCODING":    "utf-16le",
		"SHELLMENU_LOG_LEVEL":   "debug",
		"SHELLMENU_LOG_FILE":    "ctx.log",
		"SHELLMENU_DPI":         "300",
		"SHELLMENU_WORKERS":     "4",
	}))

	checks := map[string][2]string{
		"ConfigPath": {env.ConfigPath, "/etc/shellmenu.yaml"},
		"BaseDir":    {env.BaseDir, `C:\ctx`},
		"ScriptsDir": {env.ScriptsDir, "scripts"},
		"Launcher":   {env.Launcher, "launch.exe"},
		"Output":     {env.Output, "menu.reg"},
		"MenuKey":    {env.MenuKey, "Tools"},
		"MenuLabel":  {env.MenuLabel, "My Tools"},
		"Icon":       {env.Icon, "menu.ico"},
		"Encoding":   {env.Encoding, "utf-16le"},
		"LogLevel":   {env.LogLevel, "debug"},
		"LogFile":    {env.LogFile, "ctx.log"},
	}
	for field, c := range checks {
		if c[0] != c[1] {
			t.Errorf("%s = %q, want %q", field, c[0], c[1])
		}
	}
	if env.DPI != 300 || env.Workers != 4 {
		t.Errorf("DPI, Workers = %d, %d, want 300, 4", env.DPI, env.Workers)
	}
}

func TestLoadEnv_InvalidNumbersIgnored(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, dpi, workers string
	}{
		{"not a number", "high", "many"},
		{"zero", "0", "0"},
		{"negative", "-150", "-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := LoadEnv(mapEnv(map[string]string{
				"SHELLMENU_DPI":     tt.dpi,
				"SHELLMENU_WORKERS": tt.workers,
			}))
			if env.DPI != 0 || env.Workers != 0 {
				t.Errorf("DPI, Workers = %d, %d, want 0, 0", env.DPI, env.Workers)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEnv_Apply - Overrides on top of the config file
// ---------------------------------------------------------------------------

func TestEnv_Apply(t *testing.T) {
	t.Parallel()

	t.Run("set values override config", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.Menu.Label = "From File"

		env := &Env{MenuLabel: "From Env", DPI: 72, LogFile: "x.log"}
		env.Apply(cfg)

		if cfg.Menu.Label != "From Env" {
			t.Errorf("Menu.Label = %q, want From Env", cfg.Menu.Label)
		}
		if cfg.Tools.PDFImages.DPI != 72 {
			t.Errorf("DPI = %d, want 72", cfg.Tools.PDFImages.DPI)
		}
		if cfg.Log.File != "x.log" {
			t.Errorf("Log.File = %q, want x.log", cfg.Log.File)
		}
	})

	t.Run("unset values leave config alone", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.Generator.Output = "kept.reg"

		(&Env{}).Apply(cfg)

		if cfg.Generator.Output != "kept.reg" {
			t.Errorf("Output = %q, want kept.reg", cfg.Generator.Output)
		}
		if cfg.Tools.PDFImages.DPI != 150 {
			t.Errorf("DPI = %d, want 150", cfg.Tools.PDFImages.DPI)
		}
	})
}

func TestUnknownEnvVars(t *testing.T) {
	t.Parallel()

	got := UnknownEnvVars([]string{
		"PATH=/usr/bin",
		"SHELLMENU_OUTPUT=menu.reg",
		"SHELLMENU_OUTPT=typo.reg",
		"SHELLMENU_ICN=x",
		"SHELLMENU_EMPTY",
	})
	want := []string{"SHELLMENU_EMPTY", "SHELLMENU_ICN", "SHELLMENU_OUTPT"}
	if !slices.Equal(got, want) {
		t.Errorf("UnknownEnvVars = %v, want %v", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestLoad - Full resolution order
// ---------------------------------------------------------------------------

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("flag path wins over env path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		flagPath := writeConfig(t, dir, "flag.yaml", "menu:\n  label: Flag\n")
		envPath := writeConfig(t, dir, "env.yaml", "menu:\n  label: EnvFile\n")

		cfg, err := Load(flagPath, mapEnv(map[string]string{"SHELLMENU_CONFIG": envPath}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Menu.Label != "Flag" {
			t.Errorf("Menu.Label = %q, want Flag", cfg.Menu.Label)
		}
	})

	t.Run("env path used without flag", func(t *testing.T) {
		t.Parallel()

		envPath := writeConfig(t, t.TempDir(), "env.yaml", "menu:\n  label: EnvFile\n")
		cfg, err := Load("", mapEnv(map[string]string{"SHELLMENU_CONFIG": envPath}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Menu.Label != "EnvFile" {
			t.Errorf("Menu.Label = %q, want EnvFile", cfg.Menu.Label)
		}
	})

	t.Run("env values override file values", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "c.yaml", "menu:\n  label: File\n")
		cfg, err := Load(path, mapEnv(map[string]string{"SHELLMENU_MENU_LABEL": "Env"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Menu.Label != "Env" {
			t.Errorf("Menu.Label = %q, want Env", cfg.Menu.Label)
		}
	})

	t.Run("explicit missing path is an error", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "gone.yaml"), mapEnv(nil))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid env value fails validation", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "c.yaml", "menu:\n  label: File\n")
		_, err := Load(path, mapEnv(map[string]string{"SHELLMENU_ENCODING": "ebcdic"}))
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})
}
