package store

import (
	"strconv"

	domainerrors "github.com/newsdeskapp/newsdesk-server/internal/errors"
)

const (
	defaultPage = 1
	defaultSize = 10
)

// PageRequest is the derived pagination window for a bounded list query.
type PageRequest struct {
	Page int
	Size int
}

// ParsePageRequest coerces raw query values into a pagination window.
//
// An explicit page value of 0 is rejected; absent or unparseable values
// fall back to page=1, size=10. The asymmetry (reject literal zero,
// default everything else) is an observable contract that list callers
// and clients rely on, so don't "clean it up".
func ParsePageRequest(rawPage, rawSize string) (PageRequest, error) {
	req := PageRequest{Page: defaultPage, Size: defaultSize}

	if page, err := strconv.Atoi(rawPage); err == nil {
		if page == 0 {
			return PageRequest{}, domainerrors.Validation("page not allowed to be 0")
		}
		if page > 0 {
			req.Page = page
		}
	}

	if size, err := strconv.Atoi(rawSize); err == nil && size > 0 {
		req.Size = size
	}

	return req, nil
}

// Skip returns how many active records precede the requested window.
func (p PageRequest) Skip() int {
	return p.Size * (p.Page - 1)
}

// PageMeta is the metadata block returned alongside every paginated list.
type PageMeta struct {
	Page      int `json:"page"`
	Size      int `json:"size"`
	TotalPage int `json:"totalPage"`
	TotalData int `json:"totalData"`
}

// NewPageMeta builds the metadata block for a window over totalData records.
func NewPageMeta(req PageRequest, totalData int) PageMeta {
	totalPage := 0
	if totalData > 0 {
		totalPage = (totalData + req.Size - 1) / req.Size
	}
	return PageMeta{
		Page:      req.Page,
		Size:      req.Size,
		TotalPage: totalPage,
		TotalData: totalData,
	}
}
