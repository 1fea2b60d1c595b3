package render

import (
	"fmt"
	"html/template"
	"io"
)

// Page is the data of the web UI page
type Page struct {
	View      View
	AuthorURL string
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
{{- if eq .View.Mode "loading" }}
<meta http-equiv="refresh" content="1">
{{- end }}
<title>{{ if eq .View.Mode "result" }}{{ .View.Word }} - {{ end }}Dictionary</title>
<style>
body { font-family: sans-serif; max-width: 56rem; margin: 0 auto; padding: 1rem; }
header { display: flex; justify-content: space-between; align-items: center; gap: 1rem; }
.phonetic { color: #0891b2; font-size: 1.4rem; }
.example { color: #6b7280; font-style: italic; }
.number { color: #60a5fa; font-size: .8rem; opacity: .7; }
.notice { color: #6b7280; }
.loading { height: 20rem; display: flex; align-items: center; justify-content: center; }
</style>
</head>
<body>
<header>
<strong>Dictionary</strong>
<form action="/search" method="post">
<input type="text" name="word" title="word" placeholder="Search for a word" required>
<button type="submit" title="search">Search</button>
</form>
{{- if .AuthorURL }}
<a href="{{ .AuthorURL }}" target="_blank" rel="noopener noreferrer" title="Github">Github</a>
{{- end }}
</header>
<main>
{{- if eq .View.Mode "loading" }}
<div class="loading" role="progressbar" aria-busy="true">Looking up {{ .View.Word }}…</div>
{{- else if eq .View.Mode "result" }}
<h1>{{ .View.Word }}</h1>
<div>
{{- if .View.Phonetic }}
<p class="phonetic">{{ .View.Phonetic }}</p>
{{- end }}
{{- if .View.Audio }}
<audio id="pronunciation" preload="none"><source src="{{ .View.Audio }}" type="audio/mp3"></audio>
<button type="button" title="music" onclick="var a=document.getElementById('pronunciation'); if (a.paused) { a.play(); this.textContent='Pause'; } else { a.pause(); this.textContent='Play'; }">Play</button>
{{- end }}
</div>
<hr>
{{- range $m := .View.Meanings }}
<section>
<h2>{{ $m.PartOfSpeech }} :</h2>
{{- range $d := $m.Definitions }}
<div>
<p><span class="number">{{ $d.Number }}</span>. {{ $d.Text }}</p>
{{- if $d.Example }}
<p class="example">Example: {{ $d.Example }}</p>
{{- end }}
{{- if $d.Synonyms }}
<p>Synonyms :</p>
<ul>{{ range $d.Synonyms }}<li>{{ . }}</li>{{ end }}</ul>
{{- end }}
{{- if $d.Antonyms }}
<p>Antonyms :</p>
<ul>{{ range $d.Antonyms }}<li>{{ . }}</li>{{ end }}</ul>
{{- end }}
</div>
{{- end }}
</section>
{{- end }}
{{- if .View.Source }}
<p>Source : <a href="{{ .View.Source }}" target="_blank">{{ .View.Source }}</a></p>
{{- end }}
{{- else }}
<h1>Search anything</h1>
{{- if .View.NotFound }}
<p class="notice">{{ if .View.Detail }}{{ .View.Detail }}{{ else }}No definitions found.{{ end }}</p>
{{- else if .View.Failed }}
<p class="notice">Lookup failed, try again later.</p>
{{- end }}
{{- end }}
</main>
</body>
</html>
`

var page = template.Must(template.New("page").Parse(pageTemplate))

// HTMLPage writes the web UI page
func HTMLPage(w io.Writer, p Page) error {
	if err := page.Execute(w, p); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	return nil
}
