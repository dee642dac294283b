package templates

import (
	"bytes"
	"html/template"
	"strings"
)

var GlobalFuncs = template.FuncMap{
	"autop": Autop,
}

// Must parses an inline template with the global funcs attached.
func Must(name, src string) *template.Template {
	return template.Must(template.New(name).Funcs(GlobalFuncs).Parse(src))
}

// Render executes tpl and returns the escaped output as a fragment that can
// be embedded in another template untouched.
func Render(tpl *template.Template, data interface{}) (template.HTML, error) {
	buf := new(bytes.Buffer)
	if err := tpl.Execute(buf, data); err != nil {
		return "", err
	}

	return template.HTML(buf.String()), nil
}

// Autop wraps blocks separated by blank lines in paragraphs and turns the
// remaining single newlines into line breaks. Input must already be safe.
func Autop(html string) template.HTML {
	html = strings.Replace(html, "\r\n", "\n", -1)
	html = strings.TrimSpace(html)
	if html == "" {
		return ""
	}

	var out strings.Builder
	for _, block := range strings.Split(html, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		out.WriteString("<p>")
		out.WriteString(strings.Replace(block, "\n", "<br />\n", -1))
		out.WriteString("</p>\n")
	}

	return template.HTML(out.String())
}
