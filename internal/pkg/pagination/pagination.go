package pagination

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/marcos-nsantos/photo-albums-backend/internal/domain"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/apperror"
)

const (
	DefaultPage  = 1
	DefaultLimit = 50
	MaxLimit     = 100

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

type Params struct {
	Page  int
	Limit int
	Order string
}

// NewParams validates raw query values. Empty strings select the defaults;
// anything present but out of range is rejected rather than clamped.
func NewParams(page, limit, order string) (Params, error) {
	p := Params{Page: DefaultPage, Limit: DefaultLimit, Order: OrderDesc}

	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			return Params{}, invalid("page must be an integer greater than or equal to 1")
		}
		p.Page = n
	}

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 || n > MaxLimit {
			return Params{}, invalid(fmt.Sprintf("limit must be an integer between 1 and %d", MaxLimit))
		}
		p.Limit = n
	}

	if order != "" {
		o := strings.ToLower(order)
		if o != OrderAsc && o != OrderDesc {
			return Params{}, invalid("order must be asc or desc")
		}
		p.Order = o
	}

	return p, nil
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

func (p Params) Ascending() bool {
	return p.Order == OrderAsc
}

func invalid(msg string) error {
	return apperror.InvalidArgument(msg, domain.ErrInvalidArgument)
}

type Info struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

func NewInfo(page, limit, totalItems int) *Info {
	totalPages := totalItems / limit
	if totalItems%limit > 0 {
		totalPages++
	}
	if totalPages == 0 {
		totalPages = 1
	}

	return &Info{
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
