package models

// Statistics aggregates sales across all orders system-wide.
// GenreBreakdown maps genre name to total ordered quantity and is omitted
// entirely when there are no orders.
type Statistics struct {
	TotalTransactions int            `json:"totalTransactions"`
	AvgTransaction    float64        `json:"avgTransaction"`
	MostPopularGenre  *string        `json:"mostPopularGenre"`
	LeastPopularGenre *string        `json:"leastPopularGenre"`
	GenreBreakdown    map[string]int `json:"genreBreakdown,omitempty"`
}
