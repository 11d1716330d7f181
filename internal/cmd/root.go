// Package cmd wires the command line onto the listing pipeline.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for lsd
func NewRootCommand() *cobra.Command {
	opts := &flagSet{}

	cmd := &cobra.Command{
		Use:   "lsd [path]...",
		Short: "List directory contents with colors and icons",
		Long: `lsd lists directory contents the way ls does, with colorized,
icon-annotated output in grid, long, oneline or tree layout.

Entries are sorted and filtered deterministically; unreadable subtrees
are flagged inline instead of aborting the listing.`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts, args)
		},
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.all, "all", "a", false, "do not ignore entries starting with .")
	flags.BoolVarP(&opts.long, "long", "l", false, "use the long listing format")
	flags.BoolVar(&opts.tree, "tree", false, "recurse into directories as a tree")
	flags.BoolVar(&opts.oneline, "oneline", false, "one entry per line")
	flags.BoolVarP(&opts.recursive, "recursive", "R", false, "list subdirectories recursively")
	flags.IntVar(&opts.depth, "depth", -1, "bound recursion to this many levels (-1 = unbounded)")
	flags.BoolVarP(&opts.dereference, "dereference", "L", false, "follow symlinked directories")
	flags.StringVar(&opts.sortKey, "sort", "", "sort column: name, size, time or extension")
	flags.BoolVarP(&opts.reverse, "reverse", "r", false, "reverse the sort order")
	flags.StringVar(&opts.groupDirs, "group-dirs", "", "group directories: first, last or none")
	flags.StringArrayVarP(&opts.ignoreGlobs, "ignore-glob", "I", nil, "skip entries matching this glob (repeatable)")
	flags.StringVar(&opts.colorWhen, "color", "", "color output: always, auto or never")
	flags.StringVar(&opts.iconWhen, "icon", "", "icon output: always, auto or never")
	flags.StringVar(&opts.iconTheme, "icon-theme", "", "icon glyph set: fancy or unicode")
	flags.BoolVar(&opts.classic, "classic", false, "no colors, no icons")
	flags.BoolVar(&opts.totalSize, "total-size", false, "show directory sizes as the sum of their contents")
	flags.StringVar(&opts.configPath, "config", "", "configuration file to use instead of the default")

	return cmd
}

// flagSet collects raw flag values before they are merged with the
// configuration file into resolved options.
type flagSet struct {
	all         bool
	long        bool
	tree        bool
	oneline     bool
	recursive   bool
	depth       int
	dereference bool
	sortKey     string
	reverse     bool
	groupDirs   string
	ignoreGlobs []string
	colorWhen   string
	iconWhen    string
	iconTheme   string
	classic     bool
	totalSize   bool
	configPath  string
}
