package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestSelect_Precedence(t *testing.T) {
	add := Add{Titles: []string{"x"}}

	tests := []struct {
		name string
		sel  Selection
		want Command
	}{
		{"bare", Selection{}, List{}},
		{"subcommand", Selection{Subcommand: add}, add},
		{"sort beats subcommand", Selection{Sort: ptr("title"), Subcommand: add}, Sort{Column: SortByTitle}},
		{"search beats sort", Selection{Search: ptr("milk"), Sort: ptr("id")}, Search{Query: "milk"}},
		{"search beats everything", Selection{Search: ptr("1"), Sort: ptr("done"), Subcommand: add}, Search{Query: "1"}},
		{"empty search still searches", Selection{Search: ptr("")}, Search{Query: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(tt.sel)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelect_InvalidSort(t *testing.T) {
	_, err := Select(Selection{Sort: ptr("priority")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid sort column "priority"`)
	assert.Contains(t, err.Error(), "id, title, done")
}

func TestSelect_SearchSkipsSortValidation(t *testing.T) {
	got, err := Select(Selection{Search: ptr("a"), Sort: ptr("bogus")})
	require.NoError(t, err)
	assert.Equal(t, Search{Query: "a"}, got)
}

func TestSelect_EmptySortIsInvalid(t *testing.T) {
	_, err := Select(Selection{Sort: ptr(""), Subcommand: Add{}})
	assert.Error(t, err)
}

func TestCommandNames(t *testing.T) {
	names := map[string]Command{
		"add": Add{}, "remove": Remove{}, "done": Done{},
		"list": List{}, "search": Search{}, "sort": Sort{},
	}
	for want, cmd := range names {
		assert.Equal(t, want, cmd.Name())
	}
}

func TestParseSortColumn(t *testing.T) {
	for _, c := range SortColumns {
		got, err := ParseSortColumn(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseSortColumn("ID")
	assert.Error(t, err, "columns are case-sensitive")
}
