package handlers

import (
	"net/http"
	"strings"
)

// apologyEscapes is applied strictly in order: hyphens are doubled before
// spaces become hyphens, otherwise escaped spaces would be mangled again.
var apologyEscapes = [...][2]string{
	{"-", "--"},
	{" ", "-"},
	{"_", "__"},
	{"?", "~q"},
	{"%", "~p"},
	{"#", "~h"},
	{"/", "~s"},
	{`"`, "''"},
}

func escapeApology(s string) string {
	for _, pair := range apologyEscapes {
		s = strings.ReplaceAll(s, pair[0], pair[1])
	}
	return s
}

// ApologyViewModel holds data for the apology page.
type ApologyViewModel struct {
	Top    int
	Bottom string
}

// apology renders message as an error page with the given status code.
func (h *Handlers) apology(w http.ResponseWriter, message string, code int) {
	h.renderStatus(w, "apology.html", ApologyViewModel{
		Top:    code,
		Bottom: escapeApology(message),
	}, code)
}
