package listing

import "strconv"

// PageButton is one element of the pagination strip: either a page number or
// an ellipsis standing in for a collapsed range.
type PageButton struct {
	Page     int
	Ellipsis bool
}

func (b PageButton) String() string {
	if b.Ellipsis {
		return "…"
	}
	return strconv.Itoa(b.Page)
}

// maxVisible is the width of the contiguous button window around the current page.
const maxVisible = 5

// PageButtons generates the pagination strip for (current, total): page 1 and
// the last page are always present, a window of up to maxVisible contiguous
// pages is centered on the current page, and each skipped range collapses
// into a single ellipsis. Output is deterministic for any input pair.
func PageButtons(current, total int) []PageButton {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	} else if current > total {
		current = total
	}

	// center the window, then clamp it against both ends
	start := current - maxVisible/2
	end := current + maxVisible/2
	if start < 1 {
		end += 1 - start
		start = 1
	}
	if end > total {
		start -= end - total
		end = total
	}
	if start < 1 {
		start = 1
	}

	out := []PageButton{{Page: 1}}
	if start > 2 {
		out = append(out, PageButton{Ellipsis: true})
	}
	for p := start; p <= end; p++ {
		if p <= 1 || p >= total {
			continue
		}
		out = append(out, PageButton{Page: p})
	}
	if end < total-1 {
		out = append(out, PageButton{Ellipsis: true})
	}
	if total > 1 {
		out = append(out, PageButton{Page: total})
	}
	return out
}
