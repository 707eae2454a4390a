// Package assets provides the CSS styles and HTML page templates used when
// Markdown and page images are turned into HTML or PDF.
//
// # Loader Architecture
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles and templates (go:embed)
//	    ├── FilesystemLoader  - a user directory with the same layout
//	    └── Resolver          - custom first, embedded as fallback
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── {name}.html          # "page" and "images"
//
// # Security
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
