// Package assets provides the HTML résumé templates and the résumé JSON schema.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from the go:embed filesystem (built-in templates)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// A built-in template is addressed by its file name ("default.html"); the
// logical asset path is "templates/<name>". The same layout applies to a
// custom base directory, so a file at {basePath}/templates/default.html
// shadows the embedded one.
//
// # Directory Structure
//
//	{basePath}/
//	├── templates/
//	│   └── {name}.html
//	└── schema/
//	    └── resume.schema.json
//
// # Security
//
// Template names must be valid io/fs paths below templates/ (no "..", no
// leading slash, no backslash). FilesystemLoader resolves symlinks and
// verifies paths stay within basePath.
package assets
