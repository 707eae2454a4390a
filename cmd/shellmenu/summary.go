package main

import (
	"fmt"
	"io"

	shellmenu "github.com/alnah/go-shellmenu"
)

// printSummary reports what was written and how to import it.
func printSummary(w io.Writer, doc *shellmenu.RegistryDocument, output, uninstall string) {
	for _, e := range doc.Entries {
		fmt.Fprintf(w, "Adding script: %s %s\n", e.FileName, mutedStyle.Render("("+e.DisplayName+")"))
	}
	if len(doc.Entries) > 0 {
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, successStyle.Render("Registry file written: "+output))
	fmt.Fprintf(w, "Found %d %s\n", len(doc.Entries), plural(len(doc.Entries), "script", "scripts"))
	if len(doc.Entries) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("The menu will be empty; check --scripts-dir and --pattern."))
	}
	if uninstall != "" {
		fmt.Fprintln(w, "Uninstall file written: "+uninstall)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Next steps:"))
	fmt.Fprintf(w, "  1. Import the registry file: %s\n", cmdStyle.Render(fmt.Sprintf("regedit /s %q", output)))
	if uninstall != "" {
		fmt.Fprintf(w, "  2. To remove the menu later: %s\n", cmdStyle.Render(fmt.Sprintf("regedit /s %q", uninstall)))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
