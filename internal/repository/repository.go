package repository

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

import (
	"bidchart/internal/charterrors"
	model "bidchart/internal/models"
	"bidchart/internal/visibility"
	"fmt"
	"sync"
)

// AuctionDB defines the auction-detail storage the chart service reads from
type AuctionDB interface {
	CreateAuction(auction model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	AddParticipant(auctionID string, participant model.Participant) error
	RecordBid(auctionID, participantID string, record model.BidRecord) error
	GetVisibility(auctionID string) (visibility.Map, error)
	UpdateVisibility(auctionID string, update func(visibility.Map) visibility.Map) (visibility.Map, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu         sync.RWMutex
	auctions   map[string]*model.Auction // key: auctionID -> value: auction with participants
	visibility map[string]visibility.Map // key: auctionID -> value: legend visibility
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions:   make(map[string]*model.Auction),
		visibility: make(map[string]visibility.Map),
	}
}

// CreateAuction stores a new auction
func (r *MemoryRepo) CreateAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auction.AuctionID]; ok {
		return fmt.Errorf("create auction %s: %w", auction.AuctionID, charterrors.ErrAuctionExists)
	}

	stored := copyAuction(auction)
	r.auctions[auction.AuctionID] = &stored
	r.visibility[auction.AuctionID] = visibility.Map{}
	return nil
}

// GetAuction returns a deep copy of the auction and its participants
func (r *MemoryRepo) GetAuction(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, charterrors.ErrAuctionNotFound)
	}
	return copyAuction(*auction), nil
}

// AddParticipant appends a participant to an auction
func (r *MemoryRepo) AddParticipant(auctionID string, participant model.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return fmt.Errorf("add participant to auction %s: %w", auctionID, charterrors.ErrAuctionNotFound)
	}
	for _, p := range auction.Participants {
		if p.ParticipantID == participant.ParticipantID {
			return fmt.Errorf("add participant %s: %w", participant.ParticipantID, charterrors.ErrParticipantExists)
		}
	}

	auction.Participants = append(auction.Participants, copyParticipant(participant))
	return nil
}

// RecordBid appends a bid record to a participant, keeping arrival order
func (r *MemoryRepo) RecordBid(auctionID, participantID string, record model.BidRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return fmt.Errorf("record bid for auction %s: %w", auctionID, charterrors.ErrAuctionNotFound)
	}
	for i := range auction.Participants {
		p := &auction.Participants[i]
		if p.ParticipantID == participantID {
			record.LineItems = append([]model.LineItem(nil), record.LineItems...)
			p.BidRecords = append(p.BidRecords, record)
			return nil
		}
	}
	return fmt.Errorf("record bid for participant %s: %w", participantID, charterrors.ErrParticipantNotFound)
}

// GetVisibility returns a copy of the legend visibility of an auction
func (r *MemoryRepo) GetVisibility(auctionID string) (visibility.Map, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.visibility[auctionID]
	if !ok {
		return nil, fmt.Errorf("get visibility for auction %s: %w", auctionID, charterrors.ErrAuctionNotFound)
	}
	return m.Clone(), nil
}

// UpdateVisibility replaces the visibility of an auction with update's result.
// The read and the write happen under one lock.
func (r *MemoryRepo) UpdateVisibility(auctionID string, update func(visibility.Map) visibility.Map) (visibility.Map, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.visibility[auctionID]
	if !ok {
		return nil, fmt.Errorf("update visibility for auction %s: %w", auctionID, charterrors.ErrAuctionNotFound)
	}
	next := update(current.Clone())
	r.visibility[auctionID] = next.Clone()
	return next, nil
}

func copyAuction(a model.Auction) model.Auction {
	out := a
	if a.LeadingPrice != nil {
		price := *a.LeadingPrice
		out.LeadingPrice = &price
	}
	out.Participants = make([]model.Participant, 0, len(a.Participants))
	for _, p := range a.Participants {
		out.Participants = append(out.Participants, copyParticipant(p))
	}
	return out
}

func copyParticipant(p model.Participant) model.Participant {
	out := p
	if p.Vendor != nil {
		vendor := *p.Vendor
		out.Vendor = &vendor
	}
	out.BidRecords = make([]model.BidRecord, 0, len(p.BidRecords))
	for _, rec := range p.BidRecords {
		rec.LineItems = append([]model.LineItem(nil), rec.LineItems...)
		out.BidRecords = append(out.BidRecords, rec)
	}
	return out
}
