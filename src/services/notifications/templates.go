package notifications

import (
	"bytes"
	_ "embed"
	"html/template"
	"strings"
)

type ReviewEmailData struct {
	Heading           string
	Comments          string
	Urgency           string
	SpecificFields    []string
	RequiredDocuments []string
	Link              string
}

//go:embed review_notify.html
var reviewEmailHTML string

var reviewEmailTmpl = template.Must(
	template.New("review").
		Funcs(template.FuncMap{
			"title": func(s string) string {
				if s == "" {
					return s
				}
				return strings.ToUpper(s[:1]) + s[1:]
			},
		}).
		Parse(reviewEmailHTML),
)

func RenderReviewEmailHTML(data ReviewEmailData) (string, error) {
	var buf bytes.Buffer
	if err := reviewEmailTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
