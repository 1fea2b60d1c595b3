package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/markdown"
)

// Markdown writes a result view as a Markdown document
func Markdown(w io.Writer, v View) error {
	if v.Mode != ModeResult {
		return fmt.Errorf("no result to format, mode %q", v.Mode)
	}
	md := markdown.NewMarkdown(w)
	md.H1(v.Word)
	if v.Phonetic != "" {
		md.PlainTextf("*%s*", v.Phonetic)
	}
	if v.Audio != "" {
		md.PlainTextf("[Pronunciation](%s)", v.Audio)
	}
	md.PlainText("")

	for _, m := range v.Meanings {
		md.H2(m.PartOfSpeech)
		md.PlainText("")
		for _, d := range m.Definitions {
			md.PlainTextf("%d. %s", d.Number, d.Text)
			var notes []string
			if d.Example != "" {
				notes = append(notes, "Example: "+d.Example)
			}
			if len(d.Synonyms) > 0 {
				notes = append(notes, "Synonyms: "+strings.Join(d.Synonyms, ", "))
			}
			if len(d.Antonyms) > 0 {
				notes = append(notes, "Antonyms: "+strings.Join(d.Antonyms, ", "))
			}
			for _, note := range notes {
				md.PlainText("   - " + note)
			}
		}
		md.PlainText("")
	}

	if v.Source != "" {
		md.HorizontalRule()
		md.PlainText("")
		md.PlainTextf("Source: [%s](%s)", v.Source, v.Source)
	}
	return md.Build()
}
