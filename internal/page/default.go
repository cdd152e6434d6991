package page

// Default returns the bundled sample document. It is served whenever the
// backing store has no document yet or cannot be reached, so the public page
// always renders something.
func Default() *Document {
	d := &Document{
		Profile: Profile{
			Name:          "LinkDeck",
			Description:   "Your links, one page.\nEdit this page at /admin.",
			Avatar:        "",
			ProfileLayout: LayoutAvatar,
			Theme: Theme{
				BackgroundColor: "#f8fafc",
				TextColor:       "#0f172a",
				ButtonColor:     "#0f172a",
				ButtonTextColor: "#ffffff",
				ButtonStyle:     "rounded",
			},
		},
		Links: []Item{
			{
				ID:      "1",
				Type:    ItemTypeLink,
				Title:   "Example link",
				URL:     "https://example.com",
				Icon:    IconPrefix + "homepage",
				Enabled: true,
			},
			{
				ID:      "2",
				Type:    ItemTypeText,
				Content: "Add links, text blocks and ad slots in the editor.",
				Enabled: true,
			},
		},
		SearchEnabled:     false,
		SearchPlaceholder: "Search links",
		SiteTitle:         "LinkDeck",
	}

	d.Normalize()

	return d
}
