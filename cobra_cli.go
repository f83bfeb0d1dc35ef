package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agentflare-ai/go-docsync/internal/docsync"
	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

const rootLongDesc = `
go-docsync copies a project's canonical example into its generated documentation.

Each run rewrites two files from the example:

  • the library source, where the example becomes a //! doc-comment block above the "// lib" line
  • the README, where the example replaces the fenced block between "# Usage" and "# Logging"

Text outside those regions is preserved byte for byte. Missing files or anchors abort the
run before anything is written.
`

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	app := &cliApp{stderr: stderr}
	cmd := &cobra.Command{
		Use:           "go-docsync [flags]",
		Short:         "Sync a canonical example into library docs and README",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVarP(&app.opts.dir, "dir", "C", ".", "project root that relative paths are resolved against")
	flags.StringVar(&app.opts.examplePath, "example", docsync.DefaultExamplePath, "canonical example file (read only)")
	flags.StringVar(&app.opts.libraryPath, "lib", docsync.DefaultLibraryPath, "library source containing the \"// lib\" anchor")
	flags.StringVar(&app.opts.readmePath, "readme", docsync.DefaultReadmePath, "README containing \"# Usage\" and \"# Logging\" headings")
	flags.BoolVarP(&app.opts.verbose, "verbose", "v", false, "log each file read and written to stderr")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return app.execute(ctx)
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for go-docsync.

The output should be evaluated by your shell. For example:

  # bash
  go-docsync completion bash > /usr/local/etc/bash_completion.d/go-docsync

  # zsh
  go-docsync completion zsh > "${fpath[1]}/_go-docsync"

  # fish
  go-docsync completion fish | source

  # PowerShell
  go-docsync completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  go-docsync gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
