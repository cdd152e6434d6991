package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemIDs(items []Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	return ids
}

func linkList(ids ...string) []Item {
	items := make([]Item, len(ids))
	for i, id := range ids {
		items[i] = Item{ID: id, Type: ItemTypeLink, Title: "link " + id, URL: "https://" + id, Enabled: true}
	}

	return items
}

func TestMove(t *testing.T) {
	testCases := []struct {
		name          string
		items         []Item
		sourceID      string
		targetID      string
		expectedOrder []string
		expectedError error
	}{
		{
			name:          "move down",
			items:         linkList("a", "b", "c", "d"),
			sourceID:      "a",
			targetID:      "c",
			expectedOrder: []string{"b", "a", "c", "d"},
		},
		{
			name:          "move up",
			items:         linkList("a", "b", "c", "d"),
			sourceID:      "d",
			targetID:      "b",
			expectedOrder: []string{"a", "d", "b", "c"},
		},
		{
			name:          "move to top",
			items:         linkList("a", "b", "c"),
			sourceID:      "c",
			targetID:      "a",
			expectedOrder: []string{"c", "a", "b"},
		},
		{
			name:          "move onto itself is a no-op",
			items:         linkList("a", "b", "c"),
			sourceID:      "b",
			targetID:      "b",
			expectedOrder: []string{"a", "b", "c"},
		},
		{
			name:          "unknown source",
			items:         linkList("a", "b"),
			sourceID:      "x",
			targetID:      "a",
			expectedError: ErrItemNotFound,
		},
		{
			name:          "unknown target",
			items:         linkList("a", "b"),
			sourceID:      "a",
			targetID:      "x",
			expectedError: ErrItemNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Move(tc.items, tc.sourceID, tc.targetID)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedOrder, itemIDs(got))
		})
	}
}

// TestMovePreservesOthers checks that every item other than the source keeps
// its relative order after a move, and the source lands directly before the
// target.
func TestMovePreservesOthers(t *testing.T) {
	items := linkList("a", "b", "c", "d", "e")

	got, err := Move(items, "b", "e")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "c", "d", "b", "e"}, itemIDs(got))

	// input untouched
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, itemIDs(items))
}

func TestEnabled(t *testing.T) {
	items := []Item{
		{ID: "1", Type: ItemTypeLink, Title: "A", Enabled: true},
		{ID: "2", Type: ItemTypeLink, Title: "B", Enabled: false},
		{ID: "3", Type: ItemTypeText, Content: "hello", Enabled: true},
	}

	got := Enabled(items)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"1", "3"}, itemIDs(got))
}

func TestSearch(t *testing.T) {
	items := []Item{
		{ID: "1", Type: ItemTypeLink, Title: "My Blog", Enabled: true},
		{ID: "2", Type: ItemTypeLink, Title: "Shop", Enabled: true},
		{ID: "3", Type: ItemTypeText, Content: "welcome to my page", Enabled: true},
		{ID: "4", Type: ItemTypeAd, Enabled: true},
	}

	testCases := []struct {
		name        string
		query       string
		expectedIDs []string
	}{
		{name: "empty query returns all", query: "", expectedIDs: []string{"1", "2", "3", "4"}},
		{name: "case-insensitive title match", query: "blog", expectedIDs: []string{"1", "4"}},
		{name: "text content match", query: "WELCOME", expectedIDs: []string{"3", "4"}},
		{name: "no match keeps ad slots", query: "zzz", expectedIDs: []string{"4"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Search(items, tc.query)
			assert.Equal(t, tc.expectedIDs, itemIDs(got))
		})
	}
}

// Disabled items must be gone before search runs, so searching for a
// disabled item's title yields nothing.
func TestSearchAfterEnabledFilter(t *testing.T) {
	items := []Item{
		{ID: "1", Type: ItemTypeLink, Title: "Hidden Treasure", Enabled: false},
		{ID: "2", Type: ItemTypeLink, Title: "Shop", Enabled: true},
	}

	got := Search(Enabled(items), "treasure")
	assert.Empty(t, got)
}

func TestRemove(t *testing.T) {
	items := linkList("a", "b", "c")

	got := Remove(items, "b")
	assert.Equal(t, []string{"a", "c"}, itemIDs(got))

	got = Remove(items, "nope")
	assert.Equal(t, []string{"a", "b", "c"}, itemIDs(got))
}

func TestItemValidate(t *testing.T) {
	testCases := []struct {
		name          string
		item          Item
		expectedError error
	}{
		{name: "valid link", item: Item{ID: "1", Type: ItemTypeLink}},
		{name: "valid text", item: Item{ID: "1", Type: ItemTypeText}},
		{name: "valid ad", item: Item{ID: "1", Type: ItemTypeAd}},
		{name: "empty id", item: Item{Type: ItemTypeLink}, expectedError: ErrItemIDEmpty},
		{name: "unknown type", item: Item{ID: "1", Type: "video"}, expectedError: ErrItemTypeUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.item.Validate()

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
