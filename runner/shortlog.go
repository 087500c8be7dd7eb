package runner

import (
	"io"
	"text/template"

	"github.com/tinysemver/tinysemver/commit"
)

// defaultShortlogTemplate renders the message shared by the release commit,
// the annotated tag, and any hosting release.
const defaultShortlogTemplate = `Release: {{ .Tag }} [skip ci]
{{ with .Version.Groups.Major }}
Major:
{{ range . }}* {{ .Subject }} ({{ .ShortID }})
{{ end }}{{ end }}{{ with .Version.Groups.Minor }}
Minor:
{{ range . }}* {{ .Subject }} ({{ .ShortID }})
{{ end }}{{ end }}{{ with .Version.Groups.Patch }}
Patch:
{{ range . }}* {{ .Subject }} ({{ .ShortID }})
{{ end }}{{ end }}`

type shortlogData struct {
	Tag     string
	Version *commit.Version
}

func (r *Runner) shortlog(w io.Writer, tag string, ver *commit.Version) error {
	t, err := template.New("shortlog").Parse(defaultShortlogTemplate)
	if err != nil {
		return err
	}
	return t.Execute(w, shortlogData{Tag: tag, Version: ver})
}
