package format

// Ellipsis marks a gap in a page range.
const Ellipsis = -1

// Pages returns the page numbers a pager should render for the given
// current page and total page count: always the first and last page, a
// window around the current page, and Ellipsis markers for the gaps.
func Pages(current, total int) []int {
	if total <= 0 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	if total <= 7 {
		pages := make([]int, total)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	pages := []int{1}

	start := current - 1
	if start < 2 {
		start = 2
	}
	end := current + 1
	if end > total-1 {
		end = total - 1
	}

	if start > 2 {
		pages = append(pages, Ellipsis)
	}
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	if end < total-1 {
		pages = append(pages, Ellipsis)
	}

	return append(pages, total)
}
