package tui

// renderFooter renders the key hint line pinned to the bottom of the screen.
func renderFooter(app *App) string {
	text := footerHint
	if app.showHelp {
		text = helpText
	}
	w := app.width
	if w <= 0 {
		// Before the first WindowSizeMsg arrives, assume a classic terminal.
		w = 80
	}
	return StyleDim.Width(w).Render(text)
}
