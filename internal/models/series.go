package models

// ChartMode selects which series the legend and chart are keyed on
type ChartMode string

const (
	ModeTimeWise ChartMode = "time"
	ModeBidWise  ChartMode = "bid"
)

// ParticipantAmount is the forward-filled state of one participant at a point
type ParticipantAmount struct {
	Amount float64 `json:"amount"`
	Name   string  `json:"name"`
}

// TimeSeriesPoint is one row of the time-wise series. Timestamp is epoch milliseconds.
type TimeSeriesPoint struct {
	Timestamp    int64                        `json:"timestamp"`
	DisplayLabel string                       `json:"display_label"`
	Participants map[string]ParticipantAmount `json:"participants"`
}

// TimeSeries is the time-wise series together with the participants that produced it.
// An empty Participants list marks the placeholder series.
type TimeSeries struct {
	Points       []TimeSeriesPoint `json:"points"`
	Participants []Participant     `json:"participants"`
}

// BidIndexedPoint is one row of the bid-wise series
type BidIndexedPoint struct {
	BidNumber    int                          `json:"bid_number"`
	BidLabel     string                       `json:"bid_label"`
	Timestamp    int64                        `json:"timestamp"`
	DisplayLabel string                       `json:"display_label"`
	Participants map[string]ParticipantAmount `json:"participants"`
	BidderID     string                       `json:"bidder_id"`
	BidderAmount float64                      `json:"bidder_amount"`
}

// LegendParticipant is a clickable legend entry
type LegendParticipant struct {
	ParticipantID string `json:"participant_id"`
	DisplayName   string `json:"display_name"`
}

// Legend holds the legend entries and the ids not yet present in the visibility map
type Legend struct {
	Entries       []LegendParticipant `json:"entries"`
	NewlyObserved []string            `json:"newly_observed"`
}

// ChartView is everything the charting surface needs for one auction
type ChartView struct {
	AuctionID    string            `json:"auction_id"`
	Mode         ChartMode         `json:"mode"`
	HasBids      bool              `json:"has_bids"`
	LeadingPrice *float64          `json:"leading_price,omitempty"`
	TimeSeries   []TimeSeriesPoint `json:"time_series"`
	BidSeries    []BidIndexedPoint `json:"bid_series"`
	Legend       Legend            `json:"legend"`
	Visibility   map[string]bool   `json:"visibility"`
}

// ComparisonRow is one vendor's totals in the comparison table
type ComparisonRow struct {
	Rank             int                `json:"rank"`
	ParticipantID    string             `json:"participant_id"`
	DisplayName      string             `json:"display_name"`
	BidID            string             `json:"bid_id"`
	LineTotals       map[string]float64 `json:"line_totals"`
	Total            float64            `json:"total"`
	DeltaFromLeading *float64           `json:"delta_from_leading,omitempty"`
}

// Comparison is the per-vendor comparison table of an auction
type Comparison struct {
	AuctionID string          `json:"auction_id"`
	Rows      []ComparisonRow `json:"rows"`
}
