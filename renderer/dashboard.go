package renderer

// RenderDashboard renders the dashboard report to a markdown string.
func RenderDashboard(d *Dashboard) string {
	return renderTemplate("dashboard", "dashboard.md", d)
}
