package commit

import (
	"bytes"
	"io"
	"strings"
	"text/template"
)

const DefaultTagTemplate = `v{{- semver .Version -}}`

type TagData struct {
	Version *Version
}

var funcMap = template.FuncMap{
	"join":   strings.Join,
	"semver": func(v *Version) string { return v.V() },
}

// Tag renders tag names from a go text/template.
type Tag struct {
	t *template.Template
}

func NewTag(s string) (*Tag, error) {
	name := ""
	if s != "" {
		name = "custom_tag"
	}
	tmpl := s
	if tmpl == "" {
		tmpl = DefaultTagTemplate
	}
	t, err := template.New(name).Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return nil, err
	}
	return &Tag{t: t}, nil
}

func (t *Tag) Execute(w io.Writer, d TagData) error {
	return t.t.Execute(w, d)
}

func (t *Tag) ExecuteString(d TagData) (string, error) {
	b := &bytes.Buffer{}
	if err := t.Execute(b, d); err != nil {
		return "", err
	}

	return b.String(), nil
}
