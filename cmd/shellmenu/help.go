package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: shellmenu [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a .reg file adding a context-menu submenu with one item per")
	fmt.Fprintln(w, "executable in the scripts directory. Import it with \"regedit /s <file>\".")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --base-dir <dir>      Directory relative config paths resolve against")
	fmt.Fprintln(w, "      --scripts-dir <dir>   Directory scanned for scripts")
	fmt.Fprintln(w, "      --launcher <path>     run_silent executable every item calls")
	fmt.Fprintln(w, "  -o, --output <path>       .reg file to write")
	fmt.Fprintln(w, "      --pattern <glob>      Script file filter, repeatable (default *.exe)")
	fmt.Fprintln(w, "      --stdout              Print the .reg content instead of writing it")
	fmt.Fprintln(w, "      --uninstall <path>    Also write a .reg file that removes the menu")
	fmt.Fprintln(w, "      --write-config <path> Save the effective config as YAML and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Menu:")
	fmt.Fprintln(w, "      --menu-key <s>        Registry key of the submenu")
	fmt.Fprintln(w, "      --menu-label <s>      Label shown in Explorer")
	fmt.Fprintln(w, "      --icon <path>         Icon for the submenu")
	fmt.Fprintln(w, "      --target <class>      Where the menu appears, repeatable:")
	fmt.Fprintln(w, "                            * (all files), Directory, Directory\\Background, .pdf")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Format:")
	fmt.Fprintln(w, "      --encoding <s>        utf-8 or utf-16le")
	fmt.Fprintln(w, "      --line-ending <s>     lf or crlf")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only print errors")
	fmt.Fprintln(w, "  -v, --verbose             Print debug details")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SHELLMENU_CONFIG, SHELLMENU_BASE_DIR, SHELLMENU_SCRIPTS_DIR, SHELLMENU_LAUNCHER,")
	fmt.Fprintln(w, "  SHELLMENU_OUTPUT, SHELLMENU_MENU_KEY, SHELLMENU_MENU_LABEL, SHELLMENU_ICON,")
	fmt.Fprintln(w, "  SHELLMENU_ENCODING, SHELLMENU_LOG_LEVEL, SHELLMENU_LOG_FILE")
	fmt.Fprintln(w, "  Flags override environment variables, which override the config file.")
}
