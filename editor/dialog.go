package editor

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

const dialogMaxWidth = 48

// renderDialog draws text in a bordered box centered over body. ok is false
// when the box does not fit into width x height.
func renderDialog(st Style, text, body string, width, height int) (string, bool) {
	w := min(width-4, dialogMaxWidth, runewidth.StringWidth(text)+4)
	if w < 8 || height < 3 {
		return body, false
	}
	box := st.Message.
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(w - 2).
		Render(text)
	if lipgloss.Height(box) > height || lipgloss.Width(box) > width {
		return body, false
	}
	return overlay.Composite(box, body, overlay.Center, overlay.Center, 0, 0), true
}
