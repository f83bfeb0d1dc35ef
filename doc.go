// # go-docsync
//
// `go-docsync` keeps a library's published example honest. The project owns a
// single canonical example file that actually builds; this tool copies it into
// the two places readers look for it, so neither copy can drift.
//
// Each run:
//
//   - reads `src/example.rs`, `src/lib.rs` and `ReadMe.md`;
//   - replaces everything above the `// lib` line of the library with the
//     example, every line prefixed with `//!`;
//   - replaces the body between the `# Usage` and `# Logging` headings of the
//     README with the example inside a fenced `rust` block;
//   - writes both files back, library first.
//
// Anchors are whole lines. A missing `// lib` line, or a README without
// exactly one `# Usage` followed by exactly one `# Logging`, aborts the run
// before any file is written.
//
// ## Usage
//
//	go run ./go-docsync [flags]
//
// Examples:
//
//   - Refresh the docs of the project in the current directory:
//
//     go run ./go-docsync
//
//   - Refresh another checkout and report each file touched:
//
//     go run ./go-docsync -C ../uciengine -v
//
//   - Use a non-default layout:
//
//     go run ./go-docsync -example examples/basic.rs -lib src/lib.rs -readme README.md
//
// ## Supported Flags
//
//   - `-C DIR`: project root; relative paths are resolved against it.
//   - `-example FILE`: canonical example (default `src/example.rs`).
//   - `-lib FILE`: library source with the `// lib` anchor (default `src/lib.rs`).
//   - `-readme FILE`: README with the Usage/Logging headings (default `ReadMe.md`).
//   - `-v`: log reads and writes to stderr.
//
// ## Shell Completion
//
//	go run ./go-docsync completion bash        # bash
//	go run ./go-docsync completion zsh         # zsh
//	go run ./go-docsync completion fish | source
//	go run ./go-docsync completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
//	go run ./go-docsync gen-docs ./docs/cli
//
// Every command becomes its own Markdown file under the provided directory.
package main
