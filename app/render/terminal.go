package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultAccent is the heading colour used when none is configured
const DefaultAccent = "#bd93f9"

// TerminalStyle configures Terminal output
type TerminalStyle struct {
	// Width wraps paragraphs, zero disables wrapping
	Width  int
	Accent string
}

type terminalStyles struct {
	heading  lipgloss.Style
	phonetic lipgloss.Style
	label    lipgloss.Style
	number   lipgloss.Style
	example  lipgloss.Style
	muted    lipgloss.Style
	text     lipgloss.Style
}

func newTerminalStyles(style TerminalStyle) terminalStyles {
	accent := style.Accent
	if accent == "" {
		accent = DefaultAccent
	}
	text := lipgloss.NewStyle()
	if style.Width > 0 {
		text = text.Width(style.Width)
	}
	return terminalStyles{
		heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)),
		phonetic: lipgloss.NewStyle().Foreground(lipgloss.Color("#22d3ee")),
		label:    lipgloss.NewStyle().Bold(true),
		number:   lipgloss.NewStyle().Foreground(lipgloss.Color("#60a5fa")),
		example:  text.Foreground(lipgloss.Color("#9ca3af")).Italic(true),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		text:     text,
	}
}

// Terminal formats the view as styled terminal text
func Terminal(v View, style TerminalStyle) string {
	s := newTerminalStyles(style)
	var b strings.Builder
	switch v.Mode {
	case ModeLoading:
		b.WriteString(s.muted.Render(fmt.Sprintf("Looking up %q…", v.Word)))
	case ModePrompt:
		b.WriteString(s.heading.Render("Search anything"))
		switch {
		case v.NotFound():
			detail := v.Detail
			if detail == "" {
				detail = "No definitions found."
			}
			b.WriteString("\n" + s.muted.Render(detail))
		case v.Failed():
			b.WriteString("\n" + s.muted.Render("Lookup failed, try again later."))
		}
	case ModeResult:
		writeTerminalResult(&b, v, s)
	}
	return b.String()
}

func writeTerminalResult(b *strings.Builder, v View, s terminalStyles) {
	b.WriteString(s.heading.Render(v.Word))
	if v.Phonetic != "" {
		b.WriteString("  " + s.phonetic.Render(v.Phonetic))
	}
	b.WriteString("\n")
	for _, m := range v.Meanings {
		b.WriteString("\n" + s.label.Render(m.PartOfSpeech+" :") + "\n")
		for _, d := range m.Definitions {
			b.WriteString(s.text.Render(s.number.Render(fmt.Sprintf("%d", d.Number)) + ". " + d.Text))
			b.WriteString("\n")
			if d.Example != "" {
				b.WriteString(s.example.Render("Example: "+d.Example) + "\n")
			}
			if len(d.Synonyms) > 0 {
				b.WriteString(s.text.Render("Synonyms: "+strings.Join(d.Synonyms, ", ")) + "\n")
			}
			if len(d.Antonyms) > 0 {
				b.WriteString(s.text.Render("Antonyms: "+strings.Join(d.Antonyms, ", ")) + "\n")
			}
		}
	}
	if v.Source != "" {
		b.WriteString("\n" + s.muted.Render("Source: "+v.Source) + "\n")
	}
}
