package storefrontserver

import (
	"embed"
	"html/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.html
var templateFS embed.FS

var wonPrinter = message.NewPrinter(language.Korean)

func parseTemplates() (*template.Template, error) {
	return template.New("storefront").Funcs(template.FuncMap{
		"won": formatWon,
	}).ParseFS(templateFS, "templates/*.html")
}

// formatWon groups digits the Korean way: 12000 -> "12,000".
func formatWon(amount int64) string {
	return wonPrinter.Sprintf("%d", amount)
}
