// Package glyph maps work-item statuses onto the symbols the terminal views
// render.
package glyph

import "fmt"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

var statusGlyphs = map[string]Glyph{
	"pending":     {Key: "p", Symbol: "●", Meaning: "task pending"},
	"in-progress": {Key: "i", Symbol: "◐", Meaning: "task in progress"},
	"completed":   {Key: "x", Symbol: "✘", Meaning: "task completed"},
	"SCHEDULED":   {Key: "s", Symbol: "○", Meaning: "duty scheduled"},
	"ACTIVE":      {Key: "a", Symbol: "◉", Meaning: "duty active"},
	"COMPLETED":   {Key: "c", Symbol: "✔", Meaning: "duty completed"},
	"CANCELLED":   {Key: "~", Symbol: "⦵", Meaning: "duty cancelled"},
}

// Overdue marks a task past its due date in list views.
var Overdue = Glyph{Key: "!", Symbol: "!", Meaning: "overdue"}

// ForStatus returns the glyph for a status label, or a plain bullet when the
// status is unknown.
func ForStatus(status string) Glyph {
	if g, ok := statusGlyphs[status]; ok {
		return g
	}
	return Glyph{Symbol: "•", Meaning: "unknown"}
}

func (g Glyph) String() string {
	return g.Symbol
}
