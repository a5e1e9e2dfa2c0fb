package menu

// DefaultActive is the label highlighted when the default menu opens.
const DefaultActive = "Theme"

// Default returns the built-in portfolio menu with IDs assigned.
func Default() List {
	return Build(List{
		Title("Theme"),
		Item("Theme").WithShortcut("shift", "t").WithAction("theme"),

		Title("Navigation"),
		Item("Index Page",
			Title("Pages"),
			Item("Home").WithHref("/"),
			Item("About").WithHref("/about"),
			Item("Articles").WithHref("/articles"),
		).WithShortcut("h"),
		Item("About Me").WithHref("/about"),
		Item("Case Studies",
			Title("Work"),
			Item("Design System").WithHref("/work/design-system"),
			Item("Command Menu").WithHref("/work/command-menu"),
		),
		Item("Contact Me").WithHref("mailto:hello@example.com"),

		Title("External"),
		Item("Saved").WithShortcut("shift", "k").WithHref("/saved"),
		Item("Twitter").WithHref("https://twitter.com"),
		Item("LinkedIn").WithHref("https://linkedin.com"),
		Item("Playlists").WithHref("https://open.spotify.com"),
	})
}
