package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"caret"
	"caret/internal/source"
)

// reportFile is the TOML description of one report.
type reportFile struct {
	Kind    string      `toml:"kind"`
	Message string      `toml:"message"`
	Code    *int        `toml:"code"`
	Color   string      `toml:"color"`
	Span    []int       `toml:"span"`
	Source  sourceRef   `toml:"source"`
	Files   []sourceRef `toml:"files"`
	Labels  []labelFile `toml:"labels"`
	Notes   []string    `toml:"notes"`
	Helps   []string    `toml:"helps"`
	Config  *configFile `toml:"config"`
}

// sourceRef names a source buffer: inline content, or a file read from disk.
type sourceRef struct {
	Path    string `toml:"path"`
	Content string `toml:"content"`
	File    string `toml:"file"`
}

type labelFile struct {
	Span     []int  `toml:"span"`
	Path     string `toml:"path"`
	Message  string `toml:"message"`
	Color    string `toml:"color"`
	Order    *int   `toml:"order"`
	Priority int    `toml:"priority"`
}

type configFile struct {
	CrossGap        bool   `toml:"cross_gap"`
	Compact         bool   `toml:"compact"`
	Underlines      *bool  `toml:"underlines"`
	MultilineArrows *bool  `toml:"multiline_arrows"`
	TabWidth        int    `toml:"tab_width"`
	ASCII           bool   `toml:"ascii"`
	ByteIndexed     bool   `toml:"byte_indexed"`
	LabelAttach     string `toml:"label_attach"`
}

// loadReport reads a TOML report description and builds the report it
// describes. useColor decides the color config option, everything else
// comes from the file.
func loadReport(path string, useColor bool) (*caret.Report, error) {
	var rf reportFile
	if _, err := toml.DecodeFile(path, &rf); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	kind, err := caret.KindByName(rf.Kind)
	if err != nil {
		return nil, err
	}
	name, content, err := rf.Source.load()
	if err != nil {
		return nil, err
	}
	if len(rf.Span) != 2 {
		return nil, fmt.Errorf("span must be [start, end], got %v", rf.Span)
	}

	rep := caret.NewReport(kind, name, content, rf.Span[0], rf.Span[1]).
		WithMessage(rf.Message)
	if rf.Code != nil {
		rep.WithCode(*rf.Code)
	}
	if rf.Color != "" {
		c, err := parseColor(rf.Color)
		if err != nil {
			return nil, err
		}
		rep.WithColor(c)
	}

	for _, f := range rf.Files {
		fname, fcontent, err := f.load()
		if err != nil {
			return nil, err
		}
		rep.AddSource(fname, fcontent)
	}

	cfg := caret.DefaultConfig().WithColor(useColor)
	if rf.Config != nil {
		cfg, err = rf.Config.apply(cfg)
		if err != nil {
			return nil, err
		}
	}
	rep.WithConfig(cfg)

	for i, lf := range rf.Labels {
		if len(lf.Span) != 2 {
			return nil, fmt.Errorf("label %d: span must be [start, end], got %v", i, lf.Span)
		}
		l := caret.NewLabel(lf.Span[0], lf.Span[1]).
			WithMessage(lf.Message).
			WithPriority(lf.Priority)
		if lf.Path != "" {
			l = l.WithPath(lf.Path)
		}
		if lf.Color != "" {
			c, err := parseColor(lf.Color)
			if err != nil {
				return nil, fmt.Errorf("label %d: %w", i, err)
			}
			l = l.WithColor(c)
		}
		if lf.Order != nil {
			l = l.WithOrder(*lf.Order)
		}
		rep.AddLabel(l)
	}

	for _, n := range rf.Notes {
		rep.AddNote(n)
	}
	for _, h := range rf.Helps {
		rep.AddHelp(h)
	}
	return rep, nil
}

// load resolves the buffer and its display name. Inline content needs an
// explicit path for display; disk files display their own path unless
// overridden.
func (s sourceRef) load() (name, content string, err error) {
	switch {
	case s.Content != "":
		if s.Path == "" {
			return "", "", fmt.Errorf("inline source needs a path for display")
		}
		return s.Path, s.Content, nil
	case s.File != "":
		data, err := os.ReadFile(s.File)
		if err != nil {
			return "", "", fmt.Errorf("read source: %w", err)
		}
		name := s.Path
		if name == "" {
			name = s.File
		}
		// Спаны манифеста считаются по нормализованному содержимому.
		return name, string(source.Normalize(data)), nil
	default:
		return "", "", fmt.Errorf("source needs content or file")
	}
}

func (c *configFile) apply(cfg caret.Config) (caret.Config, error) {
	cfg = cfg.
		WithCrossGap(c.CrossGap).
		WithCompact(c.Compact).
		WithASCII(c.ASCII).
		WithByteIndexed(c.ByteIndexed)
	if c.Underlines != nil {
		cfg = cfg.WithUnderlines(*c.Underlines)
	}
	if c.MultilineArrows != nil {
		cfg = cfg.WithMultilineArrows(*c.MultilineArrows)
	}
	if c.TabWidth > 0 {
		cfg = cfg.WithTabWidth(c.TabWidth)
	}
	switch c.LabelAttach {
	case "", "middle":
	case "start":
		cfg = cfg.WithLabelAttach(caret.AttachStart)
	case "end":
		cfg = cfg.WithLabelAttach(caret.AttachEnd)
	default:
		return cfg, fmt.Errorf("unknown label_attach %q", c.LabelAttach)
	}
	return cfg, nil
}

// parseColor accepts a named color, an 8-bit palette index, or a #rrggbb
// triple.
func parseColor(s string) (caret.Color, error) {
	if c, ok := caret.ColorByName(s); ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return caret.Color{}, fmt.Errorf("bad color %q: %w", s, err)
		}
		return caret.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return caret.Fixed(uint8(n)), nil
	}
	return caret.Color{}, fmt.Errorf("unknown color %q", s)
}
