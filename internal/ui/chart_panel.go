package ui

// RenderChartPanel wraps trend chart content with a styled border.
// The chart itself is drawn by the trend package.
func RenderChartPanel(width, height int, chart, legend string) string {
	title := StylePanelTitle.Render("TREND")
	content := title + "\n" + chart + "\n" + legend
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}
