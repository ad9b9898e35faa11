package repository

import (
	"bidchart/internal/charterrors"
	model "bidchart/internal/models"
	"bidchart/internal/visibility"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Helper to create a new Auction
func newAuction(auctionID, title string) model.Auction {
	return model.Auction{
		AuctionID: auctionID,
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
}

// Helper to create a new BidRecord
func newRecord(bidID string, amount float64, createdAt time.Time) model.BidRecord {
	return model.BidRecord{
		BidID:     bidID,
		BidAmount: amount,
		CreatedAt: createdAt,
	}
}

// Test CreateAuction
func TestMemoryRepo_CreateAuction(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	price := 99.5
	auction := newAuction("auction1", "Steel pipes")
	auction.LeadingPrice = &price

	require.NoError(t, repo.CreateAuction(auction))

	err := repo.CreateAuction(auction)
	require.Error(t, err)
	require.True(t, errors.Is(err, charterrors.ErrAuctionExists))

	got, err := repo.GetAuction("auction1")
	require.NoError(t, err)
	require.Equal(t, "Steel pipes", got.Title)
	require.Equal(t, 99.5, *got.LeadingPrice)
	require.Empty(t, got.Participants)

	vis, err := repo.GetVisibility("auction1")
	require.NoError(t, err)
	require.Empty(t, vis)

	// the stored auction must not alias the caller's leading price
	price = 1
	got, err = repo.GetAuction("auction1")
	require.NoError(t, err)
	require.Equal(t, 99.5, *got.LeadingPrice)
}

// Test AddParticipant
func TestMemoryRepo_AddParticipant(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("auction1", "Cement")))

	tests := []struct {
		name        string
		auctionID   string
		participant model.Participant
		wantError   error
	}{
		{name: "valid_participant", auctionID: "auction1", participant: model.Participant{ParticipantID: "p1", Name: "Jane"}},
		{name: "participant_with_vendor", auctionID: "auction1", participant: model.Participant{ParticipantID: "p2", Vendor: &model.Vendor{VendorID: "v1", CompanyName: "Acme"}}},
		{name: "duplicate_participant", auctionID: "auction1", participant: model.Participant{ParticipantID: "p1"}, wantError: charterrors.ErrParticipantExists},
		{name: "auction_not_found", auctionID: "auctionX", participant: model.Participant{ParticipantID: "p3"}, wantError: charterrors.ErrAuctionNotFound},
	}

	for _, tc := range tests {
		err := repo.AddParticipant(tc.auctionID, tc.participant)
		if tc.wantError != nil {
			require.Error(t, err, tc.name)
			require.True(t, errors.Is(err, tc.wantError), "%s: expected %v, got %v", tc.name, tc.wantError, err)
		} else {
			require.NoError(t, err, tc.name)
		}
	}

	got, err := repo.GetAuction("auction1")
	require.NoError(t, err)
	require.Len(t, got.Participants, 2)
	require.Equal(t, "p1", got.Participants[0].ParticipantID)
	require.Equal(t, "Acme", got.Participants[1].Vendor.CompanyName)
}

// Test RecordBid
func TestMemoryRepo_RecordBid(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("auction1", "Copper")))
	require.NoError(t, repo.AddParticipant("auction1", model.Participant{ParticipantID: "p1"}))

	now := time.Now().UTC()

	tests := []struct {
		name          string
		auctionID     string
		participantID string
		record        model.BidRecord
		wantError     error
	}{
		{name: "valid_bid", auctionID: "auction1", participantID: "p1", record: newRecord("bid1", 100, now)},
		{name: "bid_in_the_past", auctionID: "auction1", participantID: "p1", record: newRecord("bid2", 90, now.Add(-24*time.Hour))},
		{name: "bid_with_max_float", auctionID: "auction1", participantID: "p1", record: newRecord("bid3", math.MaxFloat64, now)},
		{name: "participant_not_found", auctionID: "auction1", participantID: "pX", record: newRecord("bid4", 1, now), wantError: charterrors.ErrParticipantNotFound},
		{name: "auction_not_found", auctionID: "auctionX", participantID: "p1", record: newRecord("bid5", 1, now), wantError: charterrors.ErrAuctionNotFound},
	}

	for _, tc := range tests {
		err := repo.RecordBid(tc.auctionID, tc.participantID, tc.record)
		if tc.wantError != nil {
			require.True(t, errors.Is(err, tc.wantError), "%s: expected %v, got %v", tc.name, tc.wantError, err)
		} else {
			require.NoError(t, err, tc.name)
		}
	}

	got, err := repo.GetAuction("auction1")
	require.NoError(t, err)
	ids := []string{}
	for _, rec := range got.Participants[0].BidRecords {
		ids = append(ids, rec.BidID)
	}
	require.Equal(t, []string{"bid1", "bid2", "bid3"}, ids, "records keep arrival order")

	// mutating a returned copy must not leak into the store
	got.Participants[0].BidRecords[0].BidAmount = -1
	again, err := repo.GetAuction("auction1")
	require.NoError(t, err)
	require.Equal(t, 100.0, again.Participants[0].BidRecords[0].BidAmount)

	// concurrency test
	t.Run("concurrent_bids", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		require.NoError(t, repo.CreateAuction(newAuction("auction1", "Copper")))
		require.NoError(t, repo.AddParticipant("auction1", model.Participant{ParticipantID: "p1"}))

		var wg sync.WaitGroup
		concurrentCount := 50

		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				require.NoError(t, repo.RecordBid("auction1", "p1", newRecord(fmt.Sprintf("bid-%d", i), float64(100+i), time.Now())))
			}()
		}

		wg.Wait()

		got, err := repo.GetAuction("auction1")
		require.NoError(t, err)
		require.Len(t, got.Participants[0].BidRecords, concurrentCount)
	})
}

// Test GetAuction
func TestMemoryRepo_GetAuction(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("auction1", "Sand")))

	tests := []struct {
		name      string
		auctionID string
		wantError bool
	}{
		{name: "existing_auction", auctionID: "auction1", wantError: false},
		{name: "non_existing_auction", auctionID: "auctionX", wantError: true},
		{name: "empty_auctionID", auctionID: "", wantError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := repo.GetAuction(tc.auctionID)
			if tc.wantError {
				require.Error(t, err)
				require.True(t, errors.Is(err, charterrors.ErrAuctionNotFound))
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.auctionID, got.AuctionID)
			}
		})
	}
}

// Test visibility storage
func TestMemoryRepo_Visibility(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("auction1", "Gravel")))

	updated, err := repo.UpdateVisibility("auction1", func(m visibility.Map) visibility.Map {
		return m.Merge([]string{"p1", "p2"})
	})
	require.NoError(t, err)
	require.Equal(t, visibility.Map{"p1": false, "p2": false}, updated)

	updated, err = repo.UpdateVisibility("auction1", func(m visibility.Map) visibility.Map {
		return m.Toggle("p2")
	})
	require.NoError(t, err)
	require.True(t, updated.Hidden("p2"))

	// the returned map is a copy
	updated["p1"] = true
	stored, err := repo.GetVisibility("auction1")
	require.NoError(t, err)
	require.Equal(t, visibility.Map{"p1": false, "p2": true}, stored)

	_, err = repo.GetVisibility("auctionX")
	require.True(t, errors.Is(err, charterrors.ErrAuctionNotFound))
	_, err = repo.UpdateVisibility("auctionX", func(m visibility.Map) visibility.Map { return m })
	require.True(t, errors.Is(err, charterrors.ErrAuctionNotFound))

	t.Run("concurrent_toggles", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		require.NoError(t, repo.CreateAuction(newAuction("auction1", "Gravel")))

		var wg sync.WaitGroup
		toggles := 100
		for i := 0; i < toggles; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.UpdateVisibility("auction1", func(m visibility.Map) visibility.Map {
					return m.Toggle("p1")
				})
				require.NoError(t, err)
			}()
		}
		wg.Wait()

		stored, err := repo.GetVisibility("auction1")
		require.NoError(t, err)
		require.False(t, stored.Hidden("p1"), "an even number of atomic toggles restores the flag")
	})
}
