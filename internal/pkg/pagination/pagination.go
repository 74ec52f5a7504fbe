// Package pagination handles page/per_page listing windows.
package pagination

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Params is a clamped listing window. Use NewParams to build one.
type Params struct {
	Page    int
	PerPage int
}

func NewParams(page, perPage int) Params {
	p := Params{Page: max(page, DefaultPage), PerPage: perPage}
	switch {
	case perPage < 1:
		p.PerPage = DefaultPerPage
	case perPage > MaxPerPage:
		p.PerPage = MaxPerPage
	}
	return p
}

func (p Params) Offset() int { return (p.Page - 1) * p.PerPage }

func (p Params) Limit() int { return p.PerPage }

// Info describes where a page sits in the full result set.
type Info struct {
	Page       int
	PerPage    int
	TotalItems int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// Info reports the page described by p over total items.
func (p Params) Info(total int) *Info {
	return NewInfo(p.Page, p.PerPage, total)
}

// NewInfo always reports at least one page, so an empty listing is page 1 of 1.
func NewInfo(page, perPage, totalItems int) *Info {
	pages := 1
	if perPage > 0 && totalItems > 0 {
		pages = (totalItems + perPage - 1) / perPage
	}

	return &Info{
		Page:       page,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: pages,
		HasNext:    page < pages,
		HasPrev:    page > 1,
	}
}
