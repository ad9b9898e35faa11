package models

import "time"

// Vendor is the company a participant bids on behalf of
type Vendor struct {
	VendorID    string `json:"vendor_id"`
	CompanyName string `json:"company_name"`
}

// LineItem is one priced row of a bid
type LineItem struct {
	ItemID      string  `json:"item_id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// BidRecord represents a single bid event placed by a participant
type BidRecord struct {
	BidID      string     `json:"bid_id"`
	BidAmount  float64    `json:"bid_amount"`
	Percentage float64    `json:"percentage,omitempty"`
	LineItems  []LineItem `json:"line_items,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Participant represents a bidder in an auction. BidRecords are kept in arrival order.
type Participant struct {
	ParticipantID string      `json:"participant_id"`
	Name          string      `json:"name,omitempty"`
	Vendor        *Vendor     `json:"vendor,omitempty"`
	BidRecords    []BidRecord `json:"bid_records"`
}

// Auction is the auction-detail shape the dashboard consumes
type Auction struct {
	AuctionID    string        `json:"auction_id"`
	Title        string        `json:"title"`
	LeadingPrice *float64      `json:"leading_price,omitempty"`
	Participants []Participant `json:"participants"`
	CreatedAt    time.Time     `json:"created_at"`
}
