package dump

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/ustr"
	"golang.org/x/term"
)

// Config holds the parameters for printing a string.
type Config struct {
	LineWidth int            // width of the text preview in ‘en’s
	Context   *uax11.Context // context for display width calculation
	Plain     bool           // suppress colors
}

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Config.Context is
// derived from the user environment.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 65}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			config.LineWidth = max(w-5, 10)
		}
	} else {
		config.Plain = true
	}
	config.Context = uax11.ContextFromEnvironment()
	T().P("dump", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

var setupOnce sync.Once

// palette colors the parts of a table row.
type palette struct {
	head, index, lead, cont, value *color.Color
}

func newPalette(plain bool) *palette {
	p := &palette{
		head:  color.New(color.Bold),
		index: color.New(color.FgCyan),
		lead:  color.New(color.FgYellow),
		cont:  color.New(color.FgHiBlack),
		value: color.New(color.FgGreen),
	}
	if plain {
		for _, c := range []*color.Color{p.head, p.index, p.lead, p.cont, p.value} {
			c.DisableColor()
		}
	}
	return p
}

// Print outputs the codepoint table of s to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties.
func Print(s *ustr.String, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return Fprint(os.Stdout, s, config)
}

// Fprint outputs the codepoint table of s to w. A nil config results in plain
// output with a Latin context.
func Fprint(w io.Writer, s *ustr.String, config *Config) error {
	if config == nil {
		config = &Config{LineWidth: 65, Plain: true}
	}
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	setupOnce.Do(grapheme.SetupGraphemeClasses)
	p := newPalette(config.Plain)
	ew := &errWriter{w: w}
	if s.IsNull() {
		p.head.Fprintln(ew, "<null>")
		return ew.err
	}
	p.head.Fprintf(ew, "%d codepoints, %d bytes\n", s.Len(), s.Size())
	fmt.Fprintln(ew, preview(s, config.LineWidth, ctx))
	p.head.Fprintf(ew, "%5s %6s  %-12s %-9s %5s  %s\n", "index", "offset", "bytes", "codepoint", "width", "glyph")
	total := 0
	text := s.Bytes()
	c := s.Begin()
	for i := 0; i < s.Len(); i++ {
		cp, err := c.Value()
		if err != nil {
			return err
		}
		off := c.Offset()
		if err = c.Next(); err != nil {
			return err
		}
		wd := width(cp, ctx)
		total += wd
		p.index.Fprintf(ew, "%5d", i)
		fmt.Fprintf(ew, " %6d  %s %s %5d  %s\n", off, hexBytes(text[off:c.Offset()], p),
			p.value.Sprintf("%-9s", cp), wd, glyph(cp, wd))
	}
	p.head.Fprintf(ew, "display width: %d en\n", total)
	return ew.err
}

// hexBytes formats encoded bytes, padded to a column of 12 characters.
func hexBytes(b []byte, p *palette) string {
	var sb strings.Builder
	for i, x := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if i == 0 {
			sb.WriteString(p.lead.Sprintf("%02x", x))
		} else {
			sb.WriteString(p.cont.Sprintf("%02x", x))
		}
	}
	if pad := 12 - (3*len(b) - 1); pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	return sb.String()
}

// width returns the display width of a codepoint. Control characters and
// values outside of Unicode have no width.
func width(c ustr.Codepoint, ctx *uax11.Context) int {
	if !c.IsUnicode() || c < 0x20 || (c >= 0x7f && c < 0xa0) {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(string(c.Rune())), ctx)
}

func glyph(c ustr.Codepoint, wd int) string {
	if wd == 0 {
		return "·"
	}
	return string(c.Rune())
}

// preview renders the text of s, cut to at most linewidth ‘en’s.
func preview(s *ustr.String, linewidth int, ctx *uax11.Context) string {
	var sb strings.Builder
	used := 0
	for _, c := range s.Codepoints() {
		wd := width(c, ctx)
		if linewidth > 0 && used+max(wd, 1) > linewidth-1 {
			sb.WriteString("…")
			break
		}
		sb.WriteString(glyph(c, wd))
		used += max(wd, 1)
	}
	return sb.String()
}

// errWriter remembers the first write error and discards all output after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
