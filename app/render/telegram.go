package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

const telegramTemplate = `<b>{{ html .Word }}</b>
{{- if .Phonetic }}
<u>Phonetics</u>: {{ html .Phonetic }}
{{- end }}
{{- range $m := .Meanings }}

<b>{{ html $m.PartOfSpeech }}</b>
{{- range $d := $m.Definitions }}
{{ $d.Number }}. <code>{{ html $d.Text }}</code>
{{- if $d.Example }}
<i>Example: {{ html $d.Example }}</i>
{{- end }}
{{- if $d.Synonyms }}
Synonyms: {{ html (join $d.Synonyms ", ") }}
{{- end }}
{{- if $d.Antonyms }}
Antonyms: {{ html (join $d.Antonyms ", ") }}
{{- end }}
{{- end }}
___
{{- end }}
{{- if .Source }}
Source: <a href="{{ html .Source }}">{{ html .Source }}</a>
{{- end }}
`

var telegramMessage = template.Must(
	template.New("telegram").Funcs(template.FuncMap{"join": strings.Join}).Parse(telegramTemplate),
)

// TelegramMessage formats a result view as a Telegram HTML message
func TelegramMessage(v View) (string, error) {
	if v.Mode != ModeResult {
		return "", fmt.Errorf("no result to format, mode %q", v.Mode)
	}
	buf := &bytes.Buffer{}
	if err := telegramMessage.Execute(buf, v); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}
