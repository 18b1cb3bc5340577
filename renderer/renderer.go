// Package renderer renders the tracker's views as markdown.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.md
var templates embed.FS

var printer = message.NewPrinter(language.English)

var funcs = template.FuncMap{
	"num":   formatCount,
	"rate":  formatRate,
	"trend": formatTrend,
	"inc":   func(i int) int { return i + 1 },
	"cell":  tableCell,
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

// tableCell escapes s for a markdown table cell.
func tableCell(s string) string { return cellEscaper.Replace(s) }

// formatCount groups thousands: 15000 is "15,000".
func formatCount(n int) string { return printer.Sprintf("%d", n) }

// formatRate formats a percentage with 2 decimals.
func formatRate(v float64) string { return fmt.Sprintf("%.2f%%", v) }

// formatTrend formats a signed percentage change, "+1.2%" or "-10%".
func formatTrend(v float64) string {
	if v == 0 {
		return "0%"
	}
	return fmt.Sprintf("%+g%%", v)
}

// renderTemplate executes the template file with data.
// Errors are rendered in place of the view.
func renderTemplate(file string, data any) string {
	tmpl, err := template.New(file).Funcs(funcs).ParseFS(templates, "templates/"+file)
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, file, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", file, err)
	}
	return b.String()
}
