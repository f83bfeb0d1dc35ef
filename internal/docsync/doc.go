// Package docsync keeps generated documentation in step with a canonical
// example file.
//
// The example is copied into two places: a library source file, where it
// becomes a `//!` doc-comment block above the `// lib` anchor line, and a
// README, where it replaces the fenced block between the `# Usage` and
// `# Logging` headings. Everything outside those regions is left untouched.
//
// [Decorate], [SpliceLibrary] and [SpliceReadme] are pure functions.
// [Synchronizer.Run] performs the file I/O around them.
package docsync
