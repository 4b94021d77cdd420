// Package cli implements the scoopfind command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scoopfind/pkg/buildinfo"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer // Search results (default: os.Stdout)
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command. scoopfind has no
// subcommands; the root command runs the search.
func (c *CLI) RootCommand() *cobra.Command {
	var opts searchOptions

	root := &cobra.Command{
		Use:   "scoopfind [query]",
		Short: "Search Scoop buckets for applications",
		Long: `scoopfind searches the manifests of all locally installed Scoop buckets
for applications whose name or executables contain the query.

When nothing matches locally, it searches the manifest listings of known
remote buckets that are not installed, using the GitHub API.`,
		Args:         cobra.MaximumNArgs(1),
		Version:      buildinfo.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			opts.workersSet = cmd.Flags().Changed("workers")
			return c.runSearch(withLogger(cmd.Context(), c.Logger), query, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().BoolVar(&opts.json, "json", false, "print results as JSON")
	root.Flags().BoolVar(&opts.noRemote, "no-remote", false, "skip the remote bucket search")
	root.Flags().StringVar(&opts.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/scoopfind/config.toml)")
	root.Flags().IntVar(&opts.workers, "workers", 0, "max concurrent bucket searches (0: one per bucket)")

	return root
}
