package collection

import "github.com/yigit/courseadmin/internal/pkg/helpers"

// Pager tracks the current 1-based page of a list.
type Pager struct {
	page int
	size int
}

// NewPager returns a pager on page 1.
func NewPager(size int) Pager {
	if size <= 0 {
		size = helpers.DefaultPageSize
	}
	return Pager{page: 1, size: size}
}

// Current returns the current page.
func (p Pager) Current() int { return p.page }

// Size returns the page size.
func (p Pager) Size() int { return p.size }

// Goto moves to page, clamped into the list of total items, and returns the new page.
func (p *Pager) Goto(page, total int) int {
	p.page = helpers.ClampPage(page, helpers.TotalPages(total, p.size))
	return p.page
}

// Next advances one page, stopping at the last.
func (p *Pager) Next(total int) int { return p.Goto(p.page+1, total) }

// Prev goes back one page, stopping at the first.
func (p *Pager) Prev(total int) int { return p.Goto(p.page-1, total) }

// Reset returns to page 1.
func (p *Pager) Reset() { p.page = 1 }

// AfterAppend jumps to the last page of a list that now holds total items.
func (p *Pager) AfterAppend(total int) {
	p.page = helpers.TotalPages(total, p.size)
}

// AfterShrink clamps the current page down after the list lost items.
func (p *Pager) AfterShrink(total int) {
	if last := helpers.TotalPages(total, p.size); p.page > last {
		p.page = last
	}
}
