package bidseries

import (
	"testing"

	"bidchart/internal/models"
	"bidchart/internal/visibility"

	"github.com/stretchr/testify/require"
)

func TestBuildBidIndexedSeries_Scenario(t *testing.T) {
	t.Parallel()

	series := NewBuilder().BuildTimeSeries(scenarioParticipants())
	points := BuildBidIndexedSeries(series.Points)

	type marker struct {
		label  string
		bidder string
		amount float64
		ts     int64
	}
	got := make([]marker, 0, len(points))
	for _, p := range points {
		got = append(got, marker{label: p.BidLabel, bidder: p.BidderID, amount: p.BidderAmount, ts: p.Timestamp})
	}

	require.Equal(t, []marker{
		{label: "Bid 1", bidder: "p1", amount: 100, ts: ts(10)},
		{label: "Bid 2", bidder: "p1", amount: 100, ts: ts(20)},
		{label: "Bid 1", bidder: "p2", amount: 120, ts: ts(20)},
		{label: "Bid 3", bidder: "p1", amount: 150, ts: ts(30)},
		{label: "Bid 2", bidder: "p2", amount: 120, ts: ts(30)},
	}, got)

	// every fanned-out point carries the full snapshot of its source point
	require.Equal(t, series.Points[1].Participants, points[1].Participants)
	require.Equal(t, series.Points[1].Participants, points[2].Participants)
	require.Equal(t, 3, points[3].BidNumber)
}

func TestBuildBidIndexedSeries_ResortsAndCopies(t *testing.T) {
	t.Parallel()

	series := NewBuilder().BuildTimeSeries(scenarioParticipants())
	reversed := []models.TimeSeriesPoint{series.Points[2], series.Points[1], series.Points[0]}

	require.Equal(t, BuildBidIndexedSeries(series.Points), BuildBidIndexedSeries(reversed))

	points := BuildBidIndexedSeries(series.Points)
	points[0].Participants["p1"] = models.ParticipantAmount{Amount: -1}
	require.Equal(t, 100.0, series.Points[0].Participants["p1"].Amount, "snapshots must not alias the input")
}

func TestBuildBidIndexedSeries_Empty(t *testing.T) {
	t.Parallel()

	require.Empty(t, BuildBidIndexedSeries(nil))

	// the placeholder series has no participants and fans out to nothing
	placeholder := NewBuilder().BuildTimeSeries(nil)
	require.Empty(t, BuildBidIndexedSeries(placeholder.Points))
}

func TestBuildBidIndexedSeries_TieInsideFirstPoint(t *testing.T) {
	t.Parallel()

	points := []models.TimeSeriesPoint{
		{Timestamp: 1, Participants: map[string]models.ParticipantAmount{"zeta": {Amount: 1}, "alpha": {Amount: 2}}},
		{Timestamp: 2, Participants: map[string]models.ParticipantAmount{"zeta": {Amount: 3}, "alpha": {Amount: 2}, "mid": {Amount: 4}}},
	}

	out := BuildBidIndexedSeries(points)
	ids := make([]string, 0, len(out))
	for _, p := range out {
		ids = append(ids, p.BidderID)
	}
	require.Equal(t, []string{"alpha", "zeta", "alpha", "zeta", "mid"}, ids)
}

func TestCollectLegend(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	series := b.BuildTimeSeries(scenarioParticipants())
	bidSeries := BuildBidIndexedSeries(series.Points)

	tests := []struct {
		name        string
		mode        models.ChartMode
		current     visibility.Map
		wantIDs     []string
		wantNewlyID []string
	}{
		{name: "time_wise_empty_map", mode: models.ModeTimeWise, current: nil, wantIDs: []string{"p1", "p2"}, wantNewlyID: []string{"p1", "p2"}},
		{name: "bid_wise_empty_map", mode: models.ModeBidWise, current: visibility.Map{}, wantIDs: []string{"p1", "p2"}, wantNewlyID: []string{"p1", "p2"}},
		{name: "time_wise_partially_known", mode: models.ModeTimeWise, current: visibility.Map{"p1": true}, wantIDs: []string{"p1", "p2"}, wantNewlyID: []string{"p2"}},
		{name: "bid_wise_all_known", mode: models.ModeBidWise, current: visibility.Map{"p1": false, "p2": true}, wantIDs: []string{"p1", "p2"}, wantNewlyID: []string{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			before := tc.current.Clone()
			legend := CollectLegend(tc.mode, series, bidSeries, tc.current)

			ids := []string{}
			for _, e := range legend.Entries {
				ids = append(ids, e.ParticipantID)
				require.NotEmpty(t, e.DisplayName)
			}
			require.Equal(t, tc.wantIDs, ids)
			require.Equal(t, tc.wantNewlyID, legend.NewlyObserved)
			require.Equal(t, before, tc.current.Clone(), "legend collection must not touch the visibility map")
		})
	}
}

func TestCollectLegend_Placeholder(t *testing.T) {
	t.Parallel()

	series := NewBuilder().BuildTimeSeries(nil)
	legend := CollectLegend(models.ModeTimeWise, series, BuildBidIndexedSeries(series.Points), nil)

	require.Empty(t, legend.Entries)
	require.Empty(t, legend.NewlyObserved)
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    models.Participant
		want string
	}{
		{name: "vendor_company", p: models.Participant{ParticipantID: "p1", Name: "Jane", Vendor: &models.Vendor{CompanyName: "Acme"}}, want: "Acme"},
		{name: "vendor_without_company", p: models.Participant{ParticipantID: "p1", Name: "Jane", Vendor: &models.Vendor{}}, want: "Jane"},
		{name: "name_only", p: models.Participant{ParticipantID: "p1", Name: "Jane"}, want: "Jane"},
		{name: "fallback", p: models.Participant{ParticipantID: "abcd1234"}, want: "Participant abcd"},
		{name: "short_id", p: models.Participant{ParticipantID: "ab"}, want: "Participant ab"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, DisplayName(tc.p))
		})
	}
}
