package store

// Default and maximum page sizes. Books default to a larger page than users;
// both stay bounded so a missing limit can never produce an unbounded result
// set.
const (
	DefaultBookLimit = 50
	DefaultUserLimit = 10
	MaxLimit         = 1000
)

// PageParams contains offset/limit pagination request parameters.
type PageParams struct {
	Offset int // number of rows to skip (>= 0)
	Limit  int // number of rows per page
}

// BookPageParams returns pagination defaults for book listings.
func BookPageParams() PageParams {
	return PageParams{Offset: 0, Limit: DefaultBookLimit}
}

// UserPageParams returns pagination defaults for user listings.
func UserPageParams() PageParams {
	return PageParams{Offset: 0, Limit: DefaultUserLimit}
}

// Validate corrects out-of-range parameters in place.
// A non-positive limit falls back to the given default.
func (p *PageParams) Validate(defaultLimit int) {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}
