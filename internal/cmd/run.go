package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/meain/lsd/internal/config"
	"github.com/meain/lsd/internal/display"
	"github.com/meain/lsd/internal/logger"
	"github.com/meain/lsd/internal/meta"
	"github.com/meain/lsd/internal/sorter"
	"github.com/meain/lsd/internal/theme"
	"github.com/meain/lsd/internal/walk"
)

// Options is the fully resolved configuration one invocation runs with.
// It is assembled once from flags, the config file and the terminal
// capabilities, then passed read-only through the pipeline.
type Options struct {
	Mode           display.Mode
	Walk           walk.Options
	Sort           sorter.Options
	ColorEnabled   bool
	IconEnabled    bool
	IconTheme      theme.IconTheme
	ThemeOverrides map[string]int
	TotalSize      bool
	Width          int
	SizeThresholds meta.SizeThresholds
	LogLevel       string
}

// runList resolves options and drives the listing pipeline for the
// given root paths.
func runList(cmd *cobra.Command, flags *flagSet, args []string) error {
	cfgPath := flags.configPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	for _, pattern := range flags.ignoreGlobs {
		if _, err := filepath.Match(pattern, "x"); err != nil {
			return fmt.Errorf("invalid ignore glob %q: %w", pattern, err)
		}
	}

	opts, err := resolveOptions(cmd, flags, cfg)
	if err != nil {
		return err
	}

	roots := args
	if len(roots) == 0 {
		roots = []string{"."}
	}

	return List(cmd, opts, roots)
}

// List walks, sorts and renders the roots, writing the listing to the
// command's stdout and diagnostics to its stderr. It returns an error
// only when at least one requested root could not be listed at all.
func List(cmd *cobra.Command, opts *Options, roots []string) error {
	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), opts.LogLevel)

	walker := walk.New(opts.Walk)
	results := walker.Walk(roots)

	metas := make([]*meta.Meta, 0, len(results))
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			log.LogError(res.Err.Error())
			failed++
			continue
		}
		if res.Meta.Err != nil {
			log.LogWarn(res.Meta.Err.Error())
		}
		res.Meta.Content = sorter.Transform(res.Meta.Content, opts.Sort)
		metas = append(metas, res.Meta)
	}
	// Roots were named explicitly; order them but never filter them.
	metas = sorter.Sort(metas, opts.Sort)

	renderer := &display.Renderer{
		Colors:         theme.NewColorsWithOverrides(opts.ColorEnabled, opts.ThemeOverrides),
		Icons:          theme.NewIcons(opts.IconEnabled, opts.IconTheme),
		Width:          opts.Width,
		TotalSize:      opts.TotalSize,
		SizeThresholds: opts.SizeThresholds,
		Now:            time.Now(),
	}
	nodes := renderer.Build(metas)
	fmt.Fprint(cmd.OutOrStdout(), renderer.Render(nodes, opts.Mode))

	if failed > 0 {
		return fmt.Errorf("%d of %d paths could not be listed", failed, len(roots))
	}
	return nil
}

// resolveOptions merges flags over the configuration file and fills in
// terminal-derived values. An explicitly set flag always wins over the
// file; otherwise the file value is used.
func resolveOptions(cmd *cobra.Command, flags *flagSet, cfg *config.Config) (*Options, error) {
	opts := &Options{
		ThemeOverrides: cfg.Theme,
		SizeThresholds: meta.DefaultSizeThresholds(),
		LogLevel:       cfg.LogLevel,
	}
	if level := os.Getenv("LSD_LOG"); level != "" {
		opts.LogLevel = level
	}
	if cfg.SizeSmall > 0 {
		opts.SizeThresholds.Small = cfg.SizeSmall
	}
	if cfg.SizeLarge > 0 {
		opts.SizeThresholds.Large = cfg.SizeLarge
	}

	// Layout: explicit mode flags beat the configured layout.
	layout := cfg.Layout
	switch {
	case flags.tree:
		layout = "tree"
	case flags.long:
		layout = "long"
	case flags.oneline:
		layout = "oneline"
	}
	switch layout {
	case "tree":
		opts.Mode = display.ModeTree
	case "long":
		opts.Mode = display.ModeLong
	case "oneline":
		opts.Mode = display.ModeOneline
	default:
		opts.Mode = display.ModeGrid
	}

	// Traversal. Tree mode always recurses.
	opts.Walk.Recursive = flags.recursive || cfg.Recursion.Enabled || opts.Mode == display.ModeTree
	opts.Walk.MaxDepth = cfg.Recursion.Depth
	if cmd.Flags().Changed("depth") {
		opts.Walk.MaxDepth = flags.depth
	}
	opts.Walk.FollowSymlinks = flags.dereference || cfg.FollowSymlinks

	// Sorting and filtering.
	sortKey := cfg.Sorting.Column
	if flags.sortKey != "" {
		sortKey = flags.sortKey
	}
	switch sortKey {
	case "", "name":
		opts.Sort.Key = sorter.ByName
	case "size":
		opts.Sort.Key = sorter.BySize
	case "time":
		opts.Sort.Key = sorter.ByTime
	case "extension":
		opts.Sort.Key = sorter.ByExtension
	default:
		return nil, fmt.Errorf("unknown sort column %q", sortKey)
	}
	opts.Sort.Reverse = flags.reverse || cfg.Sorting.Reverse

	grouping := cfg.Sorting.DirGrouping
	if flags.groupDirs != "" {
		grouping = flags.groupDirs
	}
	switch grouping {
	case "", "none":
		opts.Sort.DirGrouping = sorter.DirsNone
	case "first":
		opts.Sort.DirGrouping = sorter.DirsFirst
	case "last":
		opts.Sort.DirGrouping = sorter.DirsLast
	default:
		return nil, fmt.Errorf("unknown dir grouping %q", grouping)
	}

	opts.Sort.ShowHidden = flags.all || cfg.ShowHidden
	opts.Sort.IgnoreGlobs = append(append([]string{}, cfg.IgnoreGlobs...), flags.ignoreGlobs...)

	opts.TotalSize = flags.totalSize || cfg.TotalSize

	// Terminal capabilities.
	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd())
	opts.Width = 0
	if stdoutTTY {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			opts.Width = w
		}
	}

	for _, pair := range [][2]string{{"color", flags.colorWhen}, {"icon", flags.iconWhen}} {
		switch pair[1] {
		case "", "always", "auto", "never":
		default:
			return nil, fmt.Errorf("--%s must be always, auto or never, got %q", pair[0], pair[1])
		}
	}
	opts.ColorEnabled = resolveWhen(flags.colorWhen, cfg.Color.When, stdoutTTY && !color.NoColor)
	opts.IconEnabled = resolveWhen(flags.iconWhen, cfg.Icons.When, stdoutTTY)
	if flags.classic || cfg.Classic {
		opts.ColorEnabled = false
		opts.IconEnabled = false
	}

	iconTheme := cfg.Icons.Theme
	if flags.iconTheme != "" {
		iconTheme = flags.iconTheme
	}
	switch iconTheme {
	case "", "fancy":
		opts.IconTheme = theme.IconFancy
	case "unicode":
		opts.IconTheme = theme.IconUnicode
	default:
		return nil, fmt.Errorf("unknown icon theme %q", iconTheme)
	}

	return opts, nil
}

// resolveWhen turns an always/auto/never pair (flag first, then config)
// into a boolean, with auto deferring to the terminal detection.
func resolveWhen(flagValue, cfgValue string, auto bool) bool {
	value := cfgValue
	if flagValue != "" {
		value = flagValue
	}
	switch value {
	case "always":
		return true
	case "never":
		return false
	default:
		return auto
	}
}
