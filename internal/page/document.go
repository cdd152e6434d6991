// Package page defines the settings document rendered on the public page
// and the operations the admin editor performs on it.
package page

import "errors"

// Profile layout selectors.
const (
	LayoutAvatar = "avatar" // avatar only
	LayoutCover  = "cover"  // cover image only
	LayoutBoth   = "both"   // cover image with overlapping avatar
)

var (
	// ErrProfileMissing is returned when a document has no profile section.
	ErrProfileMissing = errors.New("document profile is missing")
	// ErrLinksMissing is returned when a document has no links section.
	ErrLinksMissing = errors.New("document links are missing")
	// ErrItemIDEmpty is returned when a content item has no id.
	ErrItemIDEmpty = errors.New("content item id is empty")
	// ErrItemTypeUnknown is returned when a content item has an unknown type.
	ErrItemTypeUnknown = errors.New("content item type is unknown")
)

// TrustedHTML marks operator-supplied raw markup (head/body script injection,
// ad slots). It is rendered unescaped and must never carry values that came
// from end users.
type TrustedHTML string

// Theme holds the colors and button shape of the public page.
type Theme struct {
	BackgroundColor   string `json:"backgroundColor"`
	TextColor         string `json:"textColor"`
	ButtonColor       string `json:"buttonColor"`
	ButtonTextColor   string `json:"buttonTextColor"`
	ButtonStyle       string `json:"buttonStyle" validate:"omitempty,oneof=rounded square pill"`
	ButtonBorderColor string `json:"buttonBorderColor,omitempty"`
	TextBorderColor   string `json:"textBorderColor,omitempty"`
}

// Profile is the header block of the public page.
type Profile struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Avatar        string `json:"avatar"`
	CoverImage    string `json:"coverImage,omitempty"`
	ProfileLayout string `json:"profileLayout,omitempty" validate:"omitempty,oneof=avatar cover both"`
	Theme         Theme  `json:"theme"`
}

// AdBanner is the optional scrolling banner above the profile block.
type AdBanner struct {
	Text       string `json:"text"`
	Background string `json:"background,omitempty"`
	TextColor  string `json:"textColor,omitempty"`
	Enabled    bool   `json:"enabled"`
}

// Document is the single settings record for one deployment. Writes are
// full-document overwrites, last writer wins.
type Document struct {
	Profile           Profile     `json:"profile"`
	Links             []Item      `json:"links"`
	AdBanner          AdBanner    `json:"adBanner,omitempty"`
	SearchEnabled     bool        `json:"searchEnabled,omitempty"`
	SearchPlaceholder string      `json:"searchPlaceholder,omitempty"`
	SiteTitle         string      `json:"siteTitle,omitempty"`
	FaviconURL        string      `json:"faviconUrl,omitempty"`
	CustomHeadCode    TrustedHTML `json:"customHeadCode,omitempty"`
	CustomBodyCode    TrustedHTML `json:"customBodyCode,omitempty"`
	ProfileEnabled    *bool       `json:"profileEnabled,omitempty"`

	// Legacy aliases kept for old persisted documents. Normalize folds them
	// into the canonical fields; they are never written back.
	AdCode        TrustedHTML `json:"adCode,omitempty"`
	FaviconPNGURL string      `json:"faviconPngUrl,omitempty"`
}

// Normalize resolves legacy field aliases and fills defaults a rendered page
// cannot go without. The canonical field always wins over its alias.
func (d *Document) Normalize() {
	if d.CustomBodyCode == "" && d.AdCode != "" {
		d.CustomBodyCode = d.AdCode
	}
	d.AdCode = ""

	if d.FaviconURL == "" && d.FaviconPNGURL != "" {
		d.FaviconURL = d.FaviconPNGURL
	}
	d.FaviconPNGURL = ""

	if d.Profile.ProfileLayout == "" {
		d.Profile.ProfileLayout = LayoutAvatar
	}

	if d.Profile.Theme.ButtonStyle == "" {
		d.Profile.Theme.ButtonStyle = "rounded"
	}

	if d.Links == nil {
		d.Links = []Item{}
	}
}

// Validate reports whether the document can be persisted. It rejects
// documents without the required top-level sections and items with an empty
// id or unknown type. Item id uniqueness is not enforced.
func (d *Document) Validate() error {
	if d.Profile.Name == "" && d.Profile.Description == "" && d.Profile.Avatar == "" {
		return ErrProfileMissing
	}

	if d.Links == nil {
		return ErrLinksMissing
	}

	for i := range d.Links {
		if err := d.Links[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ShowProfile reports whether the profile block should be rendered.
// Documents that never touched the flag default to showing it.
func (d *Document) ShowProfile() bool {
	return d.ProfileEnabled == nil || *d.ProfileEnabled
}
