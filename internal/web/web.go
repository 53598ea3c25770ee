package web

import "embed"

//go:embed templates/*.html
var templates embed.FS

const (
	IndexPage = "index.html"
	ChatPage  = "chat.html"
)

// Page returns the raw HTML of an embedded page.
func Page(name string) ([]byte, error) {
	return templates.ReadFile("templates/" + name)
}
