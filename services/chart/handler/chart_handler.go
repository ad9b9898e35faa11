package handler

//go:generate mockgen -source=chart_handler.go -destination=mock_chart_handler.go -package=handler

import (
	"net/http"
	"time"

	chart "bidchart/internal/chartService"
	model "bidchart/internal/models"
	"bidchart/services/chart/helpers"
	"bidchart/utils"

	"github.com/gin-gonic/gin"
)

type ChartServiceInterface interface {
	CreateAuction(title string, leadingPrice *float64) (model.Auction, error)
	GetAuction(auctionID string) (model.Auction, error)
	AddParticipant(auctionID, participantID, name, vendorCompanyName string) (model.Participant, error)
	RecordBid(auctionID, participantID string, in chart.BidInput) (model.BidRecord, error)
	GetChart(auctionID string, mode model.ChartMode) (model.ChartView, error)
	CommitObserved(auctionID string, participantIDs []string) error
	ToggleVisibility(auctionID, participantID string) (map[string]bool, error)
	GetComparison(auctionID string) (model.Comparison, error)
}

type ChartHandler struct {
	service ChartServiceInterface
}

func NewChartHandler(service ChartServiceInterface) *ChartHandler {
	return &ChartHandler{service: service}
}

// CreateAuctionHandler handles POST /auctions
func (h *ChartHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	auction, err := h.service.CreateAuction(req.Title, req.LeadingPrice)
	if err != nil {
		helpers.HandleServiceError(c, "CreateAuctionHandler", "failed to create auction", err, map[string]any{"title": req.Title})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToAuctionResponse(auction), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"title":      auction.Title,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *ChartHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	auction, err := h.service.GetAuction(auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "GetAuctionHandler", "error retrieving auction", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(auction), "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"auction_id":   auctionID,
		"participants": len(auction.Participants),
	})
}

// AddParticipantHandler handles POST /auctions/:auction_id/participants
func (h *ChartHandler) AddParticipantHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddParticipantHandler", err)
		return
	}

	participant, err := h.service.AddParticipant(auctionID, req.ParticipantID, req.Name, req.VendorCompanyName)
	if err != nil {
		helpers.HandleServiceError(c, "AddParticipantHandler", "failed to add participant", err, map[string]any{
			"auction_id":     auctionID,
			"participant_id": req.ParticipantID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, participant, "participant added successfully")
	helpers.LogSuccess("AddParticipantHandler", "participant added successfully", map[string]any{
		"auction_id":     auctionID,
		"participant_id": participant.ParticipantID,
	})
}

// RecordBidHandler handles POST /auctions/:auction_id/participants/:participant_id/bids
func (h *ChartHandler) RecordBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	participantID := c.Param("participant_id")

	var req helpers.RecordBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}

	in := chart.BidInput{
		BidAmount:  *req.BidAmount,
		Percentage: req.Percentage,
		LineItems:  helpers.ToLineItems(req.LineItems),
	}
	if req.CreatedAt != nil {
		in.CreatedAt = *req.CreatedAt
	}

	record, err := h.service.RecordBid(auctionID, participantID, in)
	if err != nil {
		helpers.HandleServiceError(c, "RecordBidHandler", "failed to record bid", err, map[string]any{
			"auction_id":     auctionID,
			"participant_id": participantID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidRecordResponse(record), "bid recorded successfully")
	helpers.LogSuccess("RecordBidHandler", "bid recorded successfully", map[string]any{
		"auction_id":     auctionID,
		"participant_id": participantID,
		"bid_id":         record.BidID,
		"amount":         record.BidAmount,
	})
}

// GetChartHandler handles GET /auctions/:auction_id/chart?mode=time|bid
func (h *ChartHandler) GetChartHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	start := time.Now()

	mode, err := chart.ParseMode(c.Query("mode"))
	if err != nil {
		helpers.HandleServiceError(c, "GetChartHandler", "invalid chart mode", err, map[string]any{"auction_id": auctionID})
		return
	}

	view, err := h.service.GetChart(auctionID, mode)
	if err != nil {
		helpers.HandleServiceError(c, "GetChartHandler", "error building chart", err, map[string]any{
			"auction_id": auctionID,
			"mode":       mode,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "chart built successfully")

	// the response is written; now it is safe to record the participants it introduced
	if err := h.service.CommitObserved(auctionID, view.Legend.NewlyObserved); err != nil {
		utils.Warn("GetChartHandler: failed to commit observed participants", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
	}

	helpers.LogSuccess("GetChartHandler", "chart built successfully", map[string]any{
		"auction_id":     auctionID,
		"mode":           mode,
		"has_bids":       view.HasBids,
		"points":         len(view.TimeSeries),
		"bid_points":     len(view.BidSeries),
		"newly_observed": len(view.Legend.NewlyObserved),
		"build_time":     time.Since(start).String(),
	})
}

// ToggleVisibilityHandler handles POST /auctions/:auction_id/legend/:participant_id/toggle
func (h *ChartHandler) ToggleVisibilityHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	participantID := c.Param("participant_id")

	updated, err := h.service.ToggleVisibility(auctionID, participantID)
	if err != nil {
		helpers.HandleServiceError(c, "ToggleVisibilityHandler", "failed to toggle visibility", err, map[string]any{
			"auction_id":     auctionID,
			"participant_id": participantID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, updated, "visibility toggled successfully")
	helpers.LogSuccess("ToggleVisibilityHandler", "visibility toggled successfully", map[string]any{
		"auction_id":     auctionID,
		"participant_id": participantID,
		"hidden":         updated[participantID],
	})
}

// GetComparisonHandler handles GET /auctions/:auction_id/comparison
func (h *ChartHandler) GetComparisonHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	cmp, err := h.service.GetComparison(auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "GetComparisonHandler", "error building comparison", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, cmp, "comparison retrieved successfully")
	helpers.LogSuccess("GetComparisonHandler", "comparison retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"rows":       len(cmp.Rows),
	})
}
