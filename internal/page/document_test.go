package page

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLegacyFields(t *testing.T) {
	testCases := []struct {
		name            string
		doc             Document
		expectedBody    TrustedHTML
		expectedFavicon string
	}{
		{
			name:         "adCode folds into empty customBodyCode",
			doc:          Document{AdCode: "<div>ad</div>"},
			expectedBody: "<div>ad</div>",
		},
		{
			name:         "customBodyCode wins over adCode",
			doc:          Document{CustomBodyCode: "<div>body</div>", AdCode: "<div>ad</div>"},
			expectedBody: "<div>body</div>",
		},
		{
			name:            "faviconPngUrl folds into empty faviconUrl",
			doc:             Document{FaviconPNGURL: "/uploads/favicon/f.png"},
			expectedFavicon: "/uploads/favicon/f.png",
		},
		{
			name:            "faviconUrl wins over faviconPngUrl",
			doc:             Document{FaviconURL: "/a.png", FaviconPNGURL: "/b.png"},
			expectedFavicon: "/a.png",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.doc.Normalize()

			assert.Equal(t, tc.expectedBody, tc.doc.CustomBodyCode)
			assert.Equal(t, tc.expectedFavicon, tc.doc.FaviconURL)

			// aliases are consumed, never written back
			assert.Empty(t, tc.doc.AdCode)
			assert.Empty(t, tc.doc.FaviconPNGURL)
		})
	}
}

func TestNormalizeDefaults(t *testing.T) {
	var d Document

	d.Normalize()

	assert.Equal(t, LayoutAvatar, d.Profile.ProfileLayout)
	assert.Equal(t, "rounded", d.Profile.Theme.ButtonStyle)
	assert.NotNil(t, d.Links)
}

func TestDocumentValidate(t *testing.T) {
	valid := Document{
		Profile: Profile{Name: "Me"},
		Links:   []Item{{ID: "1", Type: ItemTypeLink, Title: "A", URL: "https://a"}},
	}

	require.NoError(t, valid.Validate())

	testCases := []struct {
		name          string
		doc           Document
		expectedError error
	}{
		{
			name:          "missing profile",
			doc:           Document{Links: []Item{}},
			expectedError: ErrProfileMissing,
		},
		{
			name:          "missing links",
			doc:           Document{Profile: Profile{Name: "Me"}},
			expectedError: ErrLinksMissing,
		},
		{
			name: "item without id",
			doc: Document{
				Profile: Profile{Name: "Me"},
				Links:   []Item{{Type: ItemTypeLink}},
			},
			expectedError: ErrItemIDEmpty,
		},
		{
			name: "item with unknown type",
			doc: Document{
				Profile: Profile{Name: "Me"},
				Links:   []Item{{ID: "1", Type: "carousel"}},
			},
			expectedError: ErrItemTypeUnknown,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.doc.Validate(), tc.expectedError)
		})
	}
}

func TestShowProfile(t *testing.T) {
	var d Document
	assert.True(t, d.ShowProfile(), "unset flag defaults to visible")

	off := false
	d.ProfileEnabled = &off
	assert.False(t, d.ShowProfile())
}

func TestDefaultDocument(t *testing.T) {
	d := Default()

	require.NoError(t, d.Validate())
	assert.NotEmpty(t, d.Links)
	assert.NotEmpty(t, d.Profile.Theme.BackgroundColor)

	// a default document must survive a JSON round trip unchanged
	raw, err := json.Marshal(d)
	require.NoError(t, err)

	var back Document
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, *d, back)
}

func TestIconURL(t *testing.T) {
	testCases := []struct {
		name     string
		icon     string
		expected string
	}{
		{name: "sns preset", icon: "sns:instagram", expected: "/static/icons/instagram.svg"},
		{name: "unknown preset", icon: "sns:myspace", expected: ""},
		{name: "uploaded image", icon: "/uploads/icons/123_logo.png", expected: "/uploads/icons/123_logo.png"},
		{name: "external image", icon: "https://cdn.example.com/i.png", expected: "https://cdn.example.com/i.png"},
		{name: "empty", icon: "", expected: ""},
		{name: "bare word", icon: "link", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IconURL(tc.icon))
		})
	}
}
