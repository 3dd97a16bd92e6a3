package util

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Calculate clamps page/size query values into an offset and limit.
// Pages start at 1; a missing or out-of-range size falls back to the
// default.
func Calculate(page, size int) (from, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > maxPageSize {
		size = defaultPageSize
	}
	return (page - 1) * size, size
}
