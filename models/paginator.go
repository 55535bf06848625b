package models

import (
	"errors"
	"strconv"
)

// Page describes one page of an ordered listing
type Page struct {
	Number   int   `json:"number"`
	NumPages int   `json:"num_pages"`
	Count    int64 `json:"count"`
	PerPage  int   `json:"per_page"`
}

// NewPage resolves the requested page number against count items.
// A missing or malformed number gives the first page, any other number
// outside 1..NumPages gives the last one. An empty listing still has one (empty) page.
func NewPage(count int64, perPage int, requested string) Page {
	if perPage < 1 {
		perPage = 1
	}
	numPages := int((count + int64(perPage) - 1) / int64(perPage))
	if numPages < 1 {
		numPages = 1
	}
	number, err := strconv.Atoi(requested)
	if errors.Is(err, strconv.ErrRange) {
		// a number, just too far out to fit in an int
		number = numPages
	} else if err != nil {
		number = 1
	} else if number < 1 || number > numPages {
		number = numPages
	}
	return Page{
		Number:   number,
		NumPages: numPages,
		Count:    count,
		PerPage:  perPage,
	}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

func (p Page) HasNext() bool {
	return p.Number < p.NumPages
}

func (p Page) HasPrevious() bool {
	return p.Number > 1
}

// Len is the number of items on this page
func (p Page) Len() int {
	remaining := p.Count - int64(p.Offset())
	if remaining <= 0 {
		return 0
	}
	if remaining > int64(p.PerPage) {
		return p.PerPage
	}
	return int(remaining)
}
