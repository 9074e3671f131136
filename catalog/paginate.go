package catalog

import "github.com/ArmanNagariya-Developer/azhari-attar/models"

// ItemsPerPage is fixed for every storefront view.
const ItemsPerPage = 12

// Page is one slice of a derived product sequence plus its index metadata.
type Page struct {
	Items       []models.Product
	TotalPages  int
	CurrentPage int
}

// Paginate slices seq into fixed-size pages. It does not clamp: an
// out-of-range page yields an empty Items slice, which callers treat as a
// request to reset to page 1.
func Paginate(seq []models.Product, pageSize, page int) Page {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (len(seq) + pageSize - 1) / pageSize
	}

	out := Page{TotalPages: totalPages, CurrentPage: page, Items: []models.Product{}}
	if pageSize <= 0 || page < 1 || page > totalPages {
		return out
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(seq) {
		end = len(seq)
	}
	out.Items = seq[start:end]
	return out
}

// VisiblePages builds the clickable page strip: first and last page always
// present, a delta-wide window around the current page, and any gap
// collapsed into a single ellipsis marker. Never emits two consecutive
// ellipses.
func VisiblePages(current, total, delta int) []models.PageMarker {
	if total <= 0 {
		return nil
	}
	if total == 1 {
		return []models.PageMarker{{Number: 1}}
	}

	lo := current - delta
	if lo < 2 {
		lo = 2
	}
	hi := current + delta
	if hi > total-1 {
		hi = total - 1
	}

	out := []models.PageMarker{{Number: 1}}
	if lo > 2 {
		out = append(out, models.PageMarker{Ellipsis: true})
	}
	for i := lo; i <= hi; i++ {
		out = append(out, models.PageMarker{Number: i})
	}
	if hi < total-1 {
		out = append(out, models.PageMarker{Ellipsis: true})
	}
	return append(out, models.PageMarker{Number: total})
}
