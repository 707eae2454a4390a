// Package shellmenu generates a Windows Registry script that adds a
// context-menu submenu to Explorer, with one item per executable found in a
// scripts directory.
//
// # Quick Start
//
//	doc, err := shellmenu.Generate(shellmenu.Options{
//	    ScriptsDir:   `C:\tools\ctxmenu\tools`,
//	    LauncherPath: `C:\tools\ctxmenu\run_silent.exe`,
//	    OutputPath:   `C:\tools\ctxmenu\context_menu.reg`,
//	    Menu: shellmenu.Menu{
//	        Key:   "ContextTools",
//	        Label: "Context Tools",
//	        Icon:  `C:\tools\ctxmenu\menu.ico`,
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d items\n", len(doc.Entries))
//
// Import the result with "regedit /s context_menu.reg".
//
// # Generation Steps
//
//  1. Enumerate ScriptsDir entries matching Options.Patterns (default "*.exe"),
//     skipping subdirectories, hidden files and the launcher itself.
//  2. Derive each entry's identifier (file name without extension) and
//     display name ("convert_pdf_into_images" -> "Convert Pdf Into Images").
//  3. Sort entries by file name and reject identifiers that collide
//     case-insensitively.
//  4. Render the parent block and one item block per entry. Each item runs
//     the launcher with the script path and the "%1" placeholder.
//  5. Write the document to OutputPath with a single write.
//
// # Escaping
//
// Every path and label written inside a quoted value is escaped with
// EscapeValue: backslashes are doubled and double quotes are prefixed with a
// backslash.
//
// # Errors
//
// Missing directories and launchers are reported as ErrDirectoryNotFound and
// ErrLauncherNotFound, collisions as ErrDuplicateIdentifier and write
// failures as ErrWriteRegistry. All can be checked with errors.Is.
package shellmenu
