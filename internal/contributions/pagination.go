package contributions

import "slices"

// TotalPages returns ceil(total/perPage). Non-positive inputs yield 0.
func TotalPages(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// PageLink is one entry in the page-number run. Ellipsis entries carry no
// page and mark a gap between two shown numbers.
type PageLink struct {
	Active   bool `json:"active,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Page     int  `json:"page,omitempty"`
}

// StepLink is the Prev or Next control.
type StepLink struct {
	Disabled bool `json:"disabled"`
	Page     int  `json:"page"`
}

// Pagination describes the controls shown under a page of contributions.
// It is the zero value (not Visible) when everything fits on one page.
type Pagination struct {
	Current    int        `json:"current"`
	Next       StepLink   `json:"next"`
	Pages      []PageLink `json:"pages"`
	Prev       StepLink   `json:"prev"`
	TotalPages int        `json:"totalPages"`
	Visible    bool       `json:"visible"`
}

// Paginate computes the controls for page current out of total items.
// Shown numbers are always the first and last page plus the neighbours of
// current, clipped to the valid range.
func Paginate(total, perPage, current int) Pagination {
	totalPages := TotalPages(total, perPage)
	if totalPages <= 1 {
		return Pagination{}
	}

	shown := make([]int, 0, 5)
	for _, p := range []int{1, totalPages, current - 1, current, current + 1} {
		if p >= 1 && p <= totalPages {
			shown = append(shown, p)
		}
	}
	slices.Sort(shown)
	shown = slices.Compact(shown)

	pages := make([]PageLink, 0, len(shown)+2)
	last := 0
	for _, p := range shown {
		if last > 0 && p-last > 1 {
			pages = append(pages, PageLink{Ellipsis: true})
		}
		pages = append(pages, PageLink{Page: p, Active: p == current})
		last = p
	}

	return Pagination{
		Current:    current,
		Next:       StepLink{Page: current + 1, Disabled: current == totalPages},
		Pages:      pages,
		Prev:       StepLink{Page: current - 1, Disabled: current == 1},
		TotalPages: totalPages,
		Visible:    true,
	}
}

// Numbers returns the page numbers shown, without ellipses.
func (p Pagination) Numbers() []int {
	var nums []int
	for _, link := range p.Pages {
		if !link.Ellipsis {
			nums = append(nums, link.Page)
		}
	}
	return nums
}
