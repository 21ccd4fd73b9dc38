package banner

import (
	"exrconf/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

func GetString() string {
	renderer := lipgloss.DefaultRenderer()

	style := renderer.NewStyle().
		Foreground(styles.ColorBanner).
		Bold(true)

	ascii := `
  ___ __ __ _ __  ___  ___  _ __   / _|
 / _ \\ \/ /| '__|/ __|/ _ \| '_ \ | |_ 
|  __/ >  < | |  | (__| (_) | | | ||  _|
 \___|/_/\_\|_|   \___|\___/|_| |_||_|  `

	return "\n" + style.Render(ascii) + "\n" +
		styles.Subtle.Render("  repair simulator config generator") + "\n"
}
