package contributions

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		perPage int
		want    int
	}{
		{name: "zero items", total: 0, perPage: 6, want: 0},
		{name: "one item", total: 1, perPage: 6, want: 1},
		{name: "exactly one page", total: 6, perPage: 6, want: 1},
		{name: "one over", total: 7, perPage: 6, want: 2},
		{name: "thirteen items", total: 13, perPage: 6, want: 3},
		{name: "sixty items", total: 60, perPage: 6, want: 10},
		{name: "negative total", total: -3, perPage: 6, want: 0},
		{name: "zero per page", total: 10, perPage: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.perPage))
		})
	}
}

func TestPaginate_HiddenWhenSinglePage(t *testing.T) {
	for _, total := range []int{0, 1, 5, 6} {
		p := Paginate(total, 6, 1)
		assert.False(t, p.Visible, "total=%d", total)
		assert.Empty(t, p.Pages, "total=%d", total)
	}
}

func TestPaginate_ThirteenItemsFirstPage(t *testing.T) {
	p := Paginate(13, 6, 1)

	require.True(t, p.Visible)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, []PageLink{
		{Page: 1, Active: true},
		{Page: 2},
		{Page: 3},
	}, p.Pages)
	assert.True(t, p.Prev.Disabled)
	assert.False(t, p.Next.Disabled)
	assert.Equal(t, 2, p.Next.Page)
}

func TestPaginate_SixtyItemsMiddlePage(t *testing.T) {
	p := Paginate(60, 6, 5)

	require.True(t, p.Visible)
	assert.Equal(t, 10, p.TotalPages)
	assert.Equal(t, []PageLink{
		{Page: 1},
		{Ellipsis: true},
		{Page: 4},
		{Page: 5, Active: true},
		{Page: 6},
		{Ellipsis: true},
		{Page: 10},
	}, p.Pages)
	assert.Equal(t, []int{1, 4, 5, 6, 10}, p.Numbers())
	assert.False(t, p.Prev.Disabled)
	assert.Equal(t, 4, p.Prev.Page)
	assert.False(t, p.Next.Disabled)
	assert.Equal(t, 6, p.Next.Page)
}

func TestPaginate_LastPage(t *testing.T) {
	p := Paginate(60, 6, 10)

	assert.Equal(t, []int{1, 9, 10}, p.Numbers())
	assert.False(t, p.Prev.Disabled)
	assert.True(t, p.Next.Disabled)
}

// TestPaginate_Properties checks every valid page for a range of totals
// against the shown-set and Prev/Next rules.
func TestPaginate_Properties(t *testing.T) {
	const perPage = 6

	for total := 0; total <= 100; total++ {
		totalPages := TotalPages(total, perPage)
		if totalPages <= 1 {
			assert.False(t, Paginate(total, perPage, 1).Visible)
			continue
		}

		for current := 1; current <= totalPages; current++ {
			p := Paginate(total, perPage, current)
			require.True(t, p.Visible)
			assert.Equal(t, totalPages, p.TotalPages)

			var want []int
			for _, n := range []int{1, totalPages, current - 1, current, current + 1} {
				if n >= 1 && n <= totalPages && !slices.Contains(want, n) {
					want = append(want, n)
				}
			}
			slices.Sort(want)
			assert.Equal(t, want, p.Numbers(), "total=%d current=%d", total, current)

			// Ellipsis sits exactly between numbers more than one apart.
			for i, link := range p.Pages {
				if link.Ellipsis {
					require.Greater(t, i, 0)
					require.Less(t, i, len(p.Pages)-1)
					assert.Greater(t, p.Pages[i+1].Page-p.Pages[i-1].Page, 1)
					continue
				}
				if i > 0 && !p.Pages[i-1].Ellipsis {
					assert.Equal(t, 1, link.Page-p.Pages[i-1].Page)
				}
				assert.Equal(t, link.Page == current, link.Active)
			}

			assert.Equal(t, current == 1, p.Prev.Disabled)
			assert.Equal(t, current == totalPages, p.Next.Disabled)
		}
	}
}
