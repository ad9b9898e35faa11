package helpers

import (
	"time"

	model "bidchart/internal/models"
)

// Request/Response DTOs
type CreateAuctionRequest struct {
	Title        string   `json:"title" binding:"required"`
	LeadingPrice *float64 `json:"leading_price" binding:"omitempty,gte=0"`
}

type AddParticipantRequest struct {
	ParticipantID     string `json:"participant_id"`
	Name              string `json:"name"`
	VendorCompanyName string `json:"vendor_company_name"`
}

type LineItemRequest struct {
	ItemID      string  `json:"item_id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity" binding:"gte=0"`
	UnitPrice   float64 `json:"unit_price" binding:"gte=0"`
}

type RecordBidRequest struct {
	BidAmount  *float64          `json:"bid_amount" binding:"required,gte=0"`
	Percentage float64           `json:"percentage"`
	CreatedAt  *time.Time        `json:"created_at"`
	LineItems  []LineItemRequest `json:"line_items" binding:"omitempty,dive"`
}

type BidRecordResponse struct {
	BidID      string           `json:"bid_id"`
	BidAmount  float64          `json:"bid_amount"`
	Percentage float64          `json:"percentage"`
	LineItems  []model.LineItem `json:"line_items"`
	CreatedAt  string           `json:"created_at"`
}

type AuctionResponse struct {
	AuctionID    string              `json:"auction_id"`
	Title        string              `json:"title"`
	LeadingPrice *float64            `json:"leading_price,omitempty"`
	Participants []model.Participant `json:"participants"`
	CreatedAt    string              `json:"created_at"`
}

// ToAuctionResponse formats an auction for the API
func ToAuctionResponse(a model.Auction) AuctionResponse {
	participants := a.Participants
	if participants == nil {
		participants = []model.Participant{}
	}
	return AuctionResponse{
		AuctionID:    a.AuctionID,
		Title:        a.Title,
		LeadingPrice: a.LeadingPrice,
		Participants: participants,
		CreatedAt:    a.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToBidRecordResponse formats a bid record for the API
func ToBidRecordResponse(rec model.BidRecord) BidRecordResponse {
	items := rec.LineItems
	if items == nil {
		items = []model.LineItem{}
	}
	return BidRecordResponse{
		BidID:      rec.BidID,
		BidAmount:  rec.BidAmount,
		Percentage: rec.Percentage,
		LineItems:  items,
		CreatedAt:  rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// ToLineItems converts request line items to the model
func ToLineItems(in []LineItemRequest) []model.LineItem {
	if len(in) == 0 {
		return nil
	}
	out := make([]model.LineItem, 0, len(in))
	for _, li := range in {
		out = append(out, model.LineItem{
			ItemID:      li.ItemID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
		})
	}
	return out
}
