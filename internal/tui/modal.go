package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const maxModalW = 80

func modalBodyWidth(width int) int {
	w := width - 8
	if w > maxModalW-4 {
		w = maxModalW - 4
	}
	if w < 30 {
		w = 30
	}
	return w
}

// renderModalBox draws the shared modal chrome: a header bar and a padded
// surface. No borders: some terminals show background artifacts when
// nesting bordered components inside a modal with a background color.
func renderModalBox(width int, title string, content string) string {
	bodyW := modalBodyWidth(width)

	header := lipgloss.NewStyle().
		Bold(true).
		Width(bodyW+2).
		Padding(0, 1).
		Background(colorControlBg).
		Foreground(colorSurfaceFg).
		Render(title)

	body := lipgloss.NewStyle().
		Width(bodyW+2).
		Padding(1, 1).
		Background(colorSurfaceBg).
		Foreground(colorSurfaceFg).
		Render(lipgloss.NewStyle().Width(bodyW).Render(content))

	return strings.Join([]string{header, body}, "\n")
}

// placeCentered positions the modal in the middle of the screen.
func placeCentered(width, height int, box string) string {
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// renderConfirmModal renders the shared yes/no dialog used for deletes.
func renderConfirmModal(width int, title, body, confirmLabel, cancelLabel string, confirmFocused bool) string {
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	confirm := btnBase.Render(confirmLabel)
	cancel := btnActive.Render(cancelLabel)
	if confirmFocused {
		confirm = btnActive.Render(confirmLabel)
		cancel = btnBase.Render(cancelLabel)
	}

	sep := lipgloss.NewStyle().Background(colorControlBg).Render(" ")
	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, sep, cancel)

	help := styleMuted().Width(modalBodyWidth(width)).Render("tab: focus   enter/y: confirm   esc/n: cancel")

	content := strings.Join([]string{body, "", controls, "", help}, "\n")
	return renderModalBox(width, title, content)
}
