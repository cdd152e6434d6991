package page

import (
	"errors"
	"strings"
)

// Item types.
const (
	ItemTypeLink = "link"
	ItemTypeText = "text"
	ItemTypeAd   = "ad"
)

// Link layout sizes.
const (
	LinkLayoutSmall  = "small"
	LinkLayoutMedium = "medium"
	LinkLayoutLarge  = "large"
)

// ErrItemNotFound is returned by Move when an id is not present in the list.
var ErrItemNotFound = errors.New("content item not found")

// Item is one entry of the ordered content list: a link button, a text block
// or an ad slot, discriminated by Type. Slice order is display order.
type Item struct {
	ID      string `json:"id" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=link text ad"`
	Enabled bool   `json:"enabled"`

	// link fields
	Title  string `json:"title,omitempty"`
	URL    string `json:"url,omitempty"`
	Icon   string `json:"icon,omitempty"`
	Layout string `json:"layout,omitempty" validate:"omitempty,oneof=small medium large"`

	// text fields
	Content string `json:"content,omitempty"`

	// ad fields; empty AdHTML falls back to the document body code
	AdHTML TrustedHTML `json:"adHtml,omitempty"`
}

// Validate checks the minimal shape of a content item.
func (it *Item) Validate() error {
	if it.ID == "" {
		return ErrItemIDEmpty
	}

	switch it.Type {
	case ItemTypeLink, ItemTypeText, ItemTypeAd:
		return nil
	default:
		return ErrItemTypeUnknown
	}
}

// Enabled returns the items with Enabled set, preserving order.
func Enabled(items []Item) []Item {
	out := make([]Item, 0, len(items))

	for _, it := range items {
		if it.Enabled {
			out = append(out, it)
		}
	}

	return out
}

// Search filters items case-insensitively against a link title or a text
// content. Ad slots carry no searchable text and stay visible. An empty
// query returns the input unchanged.
func Search(items []Item, query string) []Item {
	if query == "" {
		return items
	}

	q := strings.ToLower(query)
	out := make([]Item, 0, len(items))

	for _, it := range items {
		switch it.Type {
		case ItemTypeLink:
			if strings.Contains(strings.ToLower(it.Title), q) {
				out = append(out, it)
			}
		case ItemTypeText:
			if strings.Contains(strings.ToLower(it.Content), q) {
				out = append(out, it)
			}
		default:
			out = append(out, it)
		}
	}

	return out
}

// Remove filters out the item with the given id.
func Remove(items []Item, id string) []Item {
	out := make([]Item, 0, len(items))

	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}

	return out
}

// Move takes the item with sourceID out of the list and reinserts it at the
// position of targetID, shifting the target and everything after it. The
// relative order of all other items is preserved. The input is not modified.
func Move(items []Item, sourceID, targetID string) ([]Item, error) {
	if sourceID == targetID {
		return items, nil
	}

	srcIdx := indexOf(items, sourceID)
	if srcIdx < 0 {
		return nil, ErrItemNotFound
	}

	if indexOf(items, targetID) < 0 {
		return nil, ErrItemNotFound
	}

	src := items[srcIdx]

	rest := make([]Item, 0, len(items)-1)
	rest = append(rest, items[:srcIdx]...)
	rest = append(rest, items[srcIdx+1:]...)

	dstIdx := indexOf(rest, targetID)

	out := make([]Item, 0, len(items))
	out = append(out, rest[:dstIdx]...)
	out = append(out, src)
	out = append(out, rest[dstIdx:]...)

	return out, nil
}

func indexOf(items []Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}

	return -1
}
