package room

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	SortByRating   = "rating"
	SortByPrice    = "price"
	SortByCapacity = "capacity"

	SortAscending  = "ASC"
	SortDescending = "DESC"
)

// SearchCriteria is the full filter/sort/pagination set for a room search.
// The whole struct participates in the search-result cache key, so two
// requests share a cache entry only when every field matches.
type SearchCriteria struct {
	MinPrice      *float64 `json:"min_price,omitempty"`
	MaxPrice      *float64 `json:"max_price,omitempty"`
	MinCapacity   *int     `json:"min_capacity,omitempty"`
	RoomType      string   `json:"room_type,omitempty"`
	City          string   `json:"city,omitempty"`
	Page          int      `json:"page"`
	Size          int      `json:"size"`
	SortBy        string   `json:"sort_by"`
	SortDirection string   `json:"sort_direction"`
}

func (c *SearchCriteria) Normalize() {
	if c.Page < 0 {
		c.Page = 0
	}
	if c.Size <= 0 {
		c.Size = DefaultPageSize
	}
	if c.Size > MaxPageSize {
		c.Size = MaxPageSize
	}
	switch c.SortBy {
	case SortByRating, SortByPrice, SortByCapacity:
	default:
		c.SortBy = SortByRating
	}
	if c.SortDirection != SortAscending {
		c.SortDirection = SortDescending
	}
}

// SuggestCriteria selects top-rated rooms, optionally narrowed to a city.
type SuggestCriteria struct {
	MinRating float64 `json:"min_rating"`
	City      string  `json:"city,omitempty"`
	Page      int     `json:"page"`
	Size      int     `json:"size"`
}

func (c *SuggestCriteria) Normalize() {
	if c.Page < 0 {
		c.Page = 0
	}
	if c.Size <= 0 {
		c.Size = DefaultPageSize
	}
	if c.Size > MaxPageSize {
		c.Size = MaxPageSize
	}
}

type Page struct {
	Rooms []Room `json:"rooms"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
}
