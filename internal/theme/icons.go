package theme

import (
	"bufio"
	"os"
	"strings"

	"github.com/meain/lsd/internal/meta"
)

// IconTheme selects the glyph set. Fancy needs a patched (nerd) font;
// Unicode sticks to plain codepoints any modern terminal has.
type IconTheme int

const (
	IconFancy IconTheme = iota
	IconUnicode
)

// Icons resolves the glyph shown before an entry name. Resolution order:
// kind override, then exact name, then extension, then shebang for
// extensionless regular files, then the default file glyph.
type Icons struct {
	enabled       bool
	byName        map[string]rune
	byExtension   map[string]rune
	defaultFile   rune
	defaultFolder rune
	kindGlyphs    map[meta.Kind]rune
}

// NewIcons builds an icon resolver for the given theme. When enabled is
// false, For always returns "".
func NewIcons(enabled bool, theme IconTheme) *Icons {
	if theme == IconUnicode {
		return &Icons{
			enabled:       enabled,
			byName:        map[string]rune{},
			byExtension:   map[string]rune{},
			defaultFile:   '\U0001f5cb',
			defaultFolder: '\U0001f5c1',
			kindGlyphs:    map[meta.Kind]rune{},
		}
	}
	return &Icons{
		enabled:       enabled,
		byName:        iconsByName(),
		byExtension:   iconsByExtension(),
		defaultFile:   '',
		defaultFolder: '',
		kindGlyphs: map[meta.Kind]rune{
			meta.KindSymlink:     '',
			meta.KindSocket:      '',
			meta.KindPipe:        '',
			meta.KindCharDevice: '',
			meta.KindBlockDevice: 'ﰩ',
			meta.KindSpecial:     '',
		},
	}
}

// For returns the glyph for an entry followed by a separator space, or
// "" when icons are disabled.
func (i *Icons) For(m *meta.Meta) string {
	if !i.enabled {
		return ""
	}
	return string(i.glyph(m)) + " "
}

func (i *Icons) glyph(m *meta.Meta) rune {
	switch m.Kind {
	case meta.KindDir:
		if g, ok := i.byName[strings.ToLower(m.Name)]; ok {
			return g
		}
		return i.defaultFolder
	case meta.KindSymlink:
		if g, ok := i.kindGlyphs[meta.KindSymlink]; ok {
			if m.Link != nil && m.Link.Meta != nil && m.Link.Meta.Kind == meta.KindDir {
				return ''
			}
			return g
		}
		return i.defaultFile
	case meta.KindFile:
		if g, ok := i.byName[strings.ToLower(m.Name)]; ok {
			return g
		}
		if ext := m.Extension(); ext != "" {
			if g, ok := i.byExtension[ext]; ok {
				return g
			}
		} else if g, ok := i.byShebang(m.Path); ok {
			return g
		}
		return i.defaultFile
	default:
		if g, ok := i.kindGlyphs[m.Kind]; ok {
			return g
		}
		return i.defaultFile
	}
}

// byShebang sniffs the interpreter line of an extensionless script and
// reuses the extension table for it: "#!/usr/bin/env bash" and
// "#!/bin/bash -x" both resolve through "sh".
func (i *Icons) byShebang(path string) (rune, bool) {
	if len(i.byExtension) == 0 {
		return 0, false
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, false
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	head := make([]byte, 2)
	if _, err := reader.Read(head); err != nil || string(head) != "#!" {
		return 0, false
	}
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return 0, false
	}
	line = strings.TrimSpace(line)

	parts := strings.Split(line, "/")
	fields := strings.Fields(parts[len(parts)-1])
	if len(fields) == 0 {
		return 0, false
	}

	command := fields[0]
	if command == "env" && len(fields) > 1 {
		command = fields[len(fields)-1]
	}

	return i.interpreterGlyph(command)
}

// interpreterGlyph maps an interpreter command onto the extension table.
func (i *Icons) interpreterGlyph(cmd string) (rune, bool) {
	if g, ok := i.byExtension[cmd]; ok {
		return g, true
	}
	switch {
	case strings.HasSuffix(cmd, "sh"):
		cmd = "sh"
	case strings.HasPrefix(cmd, "python"):
		cmd = "py"
	case strings.HasPrefix(cmd, "node"):
		cmd = "js"
	case strings.HasPrefix(cmd, "perl"):
		cmd = "pl"
	case strings.HasPrefix(cmd, "ruby"):
		cmd = "rb"
	default:
		return 0, false
	}
	g, ok := i.byExtension[cmd]
	return g, ok
}

// iconsByName maps well-known file names (lower-cased) to glyphs.
func iconsByName() map[string]rune {
	return map[string]rune{
		".bashrc":            '',
		".git":               '',
		".github":            '',
		".gitignore":         '',
		".gitmodules":        '',
		".vimrc":             '',
		".vscode":            '',
		".zshrc":             '',
		"bin":                '',
		"config":             '',
		"docker-compose.yml": '',
		"dockerfile":         '',
		"gradle":             '',
		"include":            '',
		"lib":                '',
		"node_modules":       '',
	}
}

// iconsByExtension maps lower-cased extensions to glyphs.
func iconsByExtension() map[string]rune {
	return map[string]rune{
		"7z":       '',
		"avi":      '',
		"bash":     '',
		"bat":      '',
		"bmp":      '',
		"bz2":      '',
		"c":        '',
		"cc":       '',
		"conf":     '',
		"cpp":      '',
		"css":      '',
		"csv":      '',
		"db":       '',
		"diff":     '',
		"doc":      '',
		"docx":     '',
		"exe":      '',
		"flac":     '',
		"gif":      '',
		"go":       '',
		"gz":       '',
		"h":        '',
		"hpp":      '',
		"hs":       '',
		"html":     '',
		"ini":      '',
		"jar":      '',
		"java":     '',
		"jpeg":     '',
		"jpg":      '',
		"js":       '',
		"json":     '',
		"jsx":      '',
		"less":     '',
		"license":  '',
		"lock":     '',
		"log":      '',
		"lua":      '',
		"markdown": '',
		"md":       '',
		"mkv":      '',
		"mov":      '',
		"mp3":      '',
		"mp4":      '',
		"ogg":      '',
		"pdf":      '',
		"php":      '',
		"pl":       '',
		"png":      '',
		"ppt":      '',
		"pptx":     '',
		"py":       '',
		"pyc":      '',
		"rar":      '',
		"rb":       '',
		"rs":       '',
		"sass":     '',
		"scss":     '',
		"sh":       '',
		"sql":      '',
		"svg":      '',
		"tar":      '',
		"tiff":     '',
		"ts":       '',
		"tsx":      '',
		"ttf":      '',
		"txt":      '',
		"vim":      '',
		"wav":      '',
		"webm":     '',
		"webp":     '',
		"xls":      '',
		"xlsx":     '',
		"xml":      '',
		"xz":       '',
		"yaml":     '',
		"yml":      '',
		"zip":      '',
		"zsh":      '',
	}
}
