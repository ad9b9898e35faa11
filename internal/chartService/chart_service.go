package chart

import (
	"bidchart/internal/bidseries"
	"bidchart/internal/charterrors"
	"bidchart/internal/comparison"
	"bidchart/internal/models"
	"bidchart/internal/repository"
	"bidchart/internal/visibility"
	"bidchart/utils"
	"fmt"
	"time"
)

// BidInput carries the fields of a bid record submitted for ingestion
type BidInput struct {
	BidAmount  float64
	Percentage float64
	LineItems  []models.LineItem
	CreatedAt  time.Time
}

// ChartService turns stored auction details into chart views
type ChartService struct {
	repo    repository.AuctionDB
	builder *bidseries.Builder
}

// NewChartService creates a new ChartService instance
func NewChartService(repo repository.AuctionDB, builder *bidseries.Builder) *ChartService {
	if builder == nil {
		builder = bidseries.NewBuilder()
	}
	return &ChartService{
		repo:    repo,
		builder: builder,
	}
}

// ParseMode maps a query value to a chart mode. Empty means time-wise.
func ParseMode(raw string) (models.ChartMode, error) {
	switch models.ChartMode(raw) {
	case "", models.ModeTimeWise:
		return models.ModeTimeWise, nil
	case models.ModeBidWise:
		return models.ModeBidWise, nil
	default:
		return "", fmt.Errorf("service: %w - %q", charterrors.ErrInvalidMode, raw)
	}
}

// CreateAuction registers a new auction
func (s *ChartService) CreateAuction(title string, leadingPrice *float64) (models.Auction, error) {
	if title == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing title", charterrors.ErrInvalidAuction)
	}
	if leadingPrice != nil && *leadingPrice < 0 {
		return models.Auction{}, fmt.Errorf("service: %w - negative leading price", charterrors.ErrInvalidAuction)
	}

	auction := models.Auction{
		AuctionID:    utils.GenerateID(),
		Title:        title,
		LeadingPrice: leadingPrice,
		Participants: []models.Participant{},
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateAuction(auction); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction %q: %w", title, err)
	}
	return auction, nil
}

// GetAuction returns the auction detail with its participants
func (s *ChartService) GetAuction(auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", charterrors.ErrInvalidAuction)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// AddParticipant adds a bidder to an auction. An empty participantID gets a generated one.
func (s *ChartService) AddParticipant(auctionID, participantID, name, vendorCompanyName string) (models.Participant, error) {
	if auctionID == "" {
		return models.Participant{}, fmt.Errorf("service: %w - empty auction ID", charterrors.ErrInvalidAuction)
	}
	if participantID == "" {
		participantID = utils.GenerateID()
	}

	participant := models.Participant{
		ParticipantID: participantID,
		Name:          name,
		BidRecords:    []models.BidRecord{},
	}
	if vendorCompanyName != "" {
		participant.Vendor = &models.Vendor{VendorID: utils.GenerateID(), CompanyName: vendorCompanyName}
	}

	if err := s.repo.AddParticipant(auctionID, participant); err != nil {
		return models.Participant{}, fmt.Errorf("service: failed to add participant to auction %s: %w", auctionID, err)
	}
	return participant, nil
}

// RecordBid ingests a bid record for a participant. CreatedAt defaults to now.
func (s *ChartService) RecordBid(auctionID, participantID string, in BidInput) (models.BidRecord, error) {
	if auctionID == "" || participantID == "" {
		return models.BidRecord{}, fmt.Errorf("service: %w - missing auctionID or participantID", charterrors.ErrInvalidBid)
	}
	if in.BidAmount < 0 {
		return models.BidRecord{}, fmt.Errorf("service: %w - negative bid amount", charterrors.ErrInvalidBid)
	}
	for _, li := range in.LineItems {
		if li.Quantity < 0 || li.UnitPrice < 0 {
			return models.BidRecord{}, fmt.Errorf("service: %w - negative line item %q", charterrors.ErrInvalidBid, li.ItemID)
		}
	}

	createdAt := in.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	record := models.BidRecord{
		BidID:      utils.GenerateID(),
		BidAmount:  in.BidAmount,
		Percentage: in.Percentage,
		LineItems:  in.LineItems,
		CreatedAt:  createdAt.UTC(),
	}

	if err := s.repo.RecordBid(auctionID, participantID, record); err != nil {
		return models.BidRecord{}, fmt.Errorf("service: failed to record bid for participant %s in auction %s: %w", participantID, auctionID, err)
	}
	return record, nil
}

// GetChart builds both series and the legend for the requested mode. The
// returned Visibility already shows newly observed participants as visible,
// but nothing is written; call CommitObserved once the view has been rendered.
func (s *ChartService) GetChart(auctionID string, mode models.ChartMode) (models.ChartView, error) {
	if auctionID == "" {
		return models.ChartView{}, fmt.Errorf("service: %w - empty auction ID", charterrors.ErrInvalidAuction)
	}
	if mode != models.ModeTimeWise && mode != models.ModeBidWise {
		return models.ChartView{}, fmt.Errorf("service: %w - %q", charterrors.ErrInvalidMode, mode)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.ChartView{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	for _, p := range auction.Participants {
		if p.ParticipantID == "" {
			return models.ChartView{}, fmt.Errorf("service: %w - participant without id in auction %s", charterrors.ErrInvalidParticipant, auctionID)
		}
	}

	current, err := s.repo.GetVisibility(auctionID)
	if err != nil {
		return models.ChartView{}, fmt.Errorf("service: failed to get visibility for auction %s: %w", auctionID, err)
	}

	withBids := bidseries.SelectParticipantsWithBids(auction.Participants)
	series := s.builder.BuildTimeSeries(withBids)
	bidSeries := bidseries.BuildBidIndexedSeries(series.Points)
	legend := bidseries.CollectLegend(mode, series, bidSeries, current)

	return models.ChartView{
		AuctionID:    auctionID,
		Mode:         mode,
		HasBids:      len(series.Participants) > 0,
		LeadingPrice: auction.LeadingPrice,
		TimeSeries:   series.Points,
		BidSeries:    bidSeries,
		Legend:       legend,
		Visibility:   current.Merge(legend.NewlyObserved),
	}, nil
}

// CommitObserved stores newly observed participants as visible
func (s *ChartService) CommitObserved(auctionID string, participantIDs []string) error {
	if len(participantIDs) == 0 {
		return nil
	}

	_, err := s.repo.UpdateVisibility(auctionID, func(m visibility.Map) visibility.Map {
		return m.Merge(participantIDs)
	})
	if err != nil {
		return fmt.Errorf("service: failed to commit observed participants for auction %s: %w", auctionID, err)
	}
	return nil
}

// ToggleVisibility flips a participant's legend flag and returns the new map
func (s *ChartService) ToggleVisibility(auctionID, participantID string) (map[string]bool, error) {
	if auctionID == "" || participantID == "" {
		return nil, fmt.Errorf("service: %w - missing auctionID or participantID", charterrors.ErrInvalidParticipant)
	}

	updated, err := s.repo.UpdateVisibility(auctionID, func(m visibility.Map) visibility.Map {
		return m.Toggle(participantID)
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to toggle participant %s in auction %s: %w", participantID, auctionID, err)
	}
	return updated, nil
}

// GetComparison returns the per-vendor totals table of an auction
func (s *ChartService) GetComparison(auctionID string) (models.Comparison, error) {
	if auctionID == "" {
		return models.Comparison{}, fmt.Errorf("service: %w - empty auction ID", charterrors.ErrInvalidAuction)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Comparison{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return comparison.Build(auction), nil
}
