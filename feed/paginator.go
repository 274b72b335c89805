package feed

import "strconv"

// PageSize is the number of posts on one feed page
const PageSize = 10

// Paginator holds the bounds of one page of a listing
type Paginator struct {
	Number   int
	NumPages int
	Count    int64
}

// Paginate picks the requested page out of count items.
// A missing or malformed page number means the first page, anything out of
// range is moved to the nearest existing page.
func Paginate(count int64, pageParam string) Paginator {
	numPages := int((count + PageSize - 1) / PageSize)
	if numPages < 1 {
		numPages = 1
	}
	number, err := strconv.Atoi(pageParam)
	if err != nil || number < 1 {
		number = 1
	}
	if number > numPages {
		number = numPages
	}
	return Paginator{Number: number, NumPages: numPages, Count: count}
}

func (p Paginator) Limit() int {
	return PageSize
}

func (p Paginator) Offset() int {
	return (p.Number - 1) * PageSize
}

func (p Paginator) HasPrevious() bool {
	return p.Number > 1
}

func (p Paginator) HasNext() bool {
	return p.Number < p.NumPages
}

// PageRange lists every page number, for the page links
func (p Paginator) PageRange() []int {
	r := make([]int, p.NumPages)
	for i := range r {
		r[i] = i + 1
	}
	return r
}
