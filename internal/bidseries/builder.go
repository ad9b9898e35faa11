// Package bidseries turns the participants of an auction into chart-ready
// series: a forward-filled time-wise series, a bid-indexed series and the
// legend that goes with either of them.
package bidseries

import (
	"fmt"
	"sort"
	"time"

	"bidchart/internal/models"
	"bidchart/internal/visibility"
)

const (
	// DefaultLabelLayout formats point labels as wall-clock time
	DefaultLabelLayout = "15:04:05"
	// DefaultPlaceholderSpan is the width of the empty-state series
	DefaultPlaceholderSpan = time.Minute
)

// Builder builds bid series. The zero value is not usable; use NewBuilder.
type Builder struct {
	now             func() time.Time
	labelLayout     string
	location        *time.Location
	placeholderSpan time.Duration
}

// Option configures a Builder
type Option func(*Builder)

// WithClock sets the clock used for the placeholder series
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithLabelLayout sets the time layout of point labels
func WithLabelLayout(layout string) Option {
	return func(b *Builder) {
		if layout != "" {
			b.labelLayout = layout
		}
	}
}

// WithLocation sets the time zone labels are rendered in
func WithLocation(loc *time.Location) Option {
	return func(b *Builder) {
		if loc != nil {
			b.location = loc
		}
	}
}

// WithPlaceholderSpan sets how far back the placeholder series starts
func WithPlaceholderSpan(span time.Duration) Option {
	return func(b *Builder) {
		if span > 0 {
			b.placeholderSpan = span
		}
	}
}

// NewBuilder creates a Builder with UTC labels and the wall clock
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		now:             time.Now,
		labelLayout:     DefaultLabelLayout,
		location:        time.UTC,
		placeholderSpan: DefaultPlaceholderSpan,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SelectParticipantsWithBids keeps the participants that placed at least one bid, in order
func SelectParticipantsWithBids(participants []models.Participant) []models.Participant {
	out := make([]models.Participant, 0, len(participants))
	for _, p := range participants {
		if len(p.BidRecords) > 0 {
			out = append(out, p)
		}
	}
	return out
}

// taggedBid is a bid record flattened out of its participant
type taggedBid struct {
	participantID string
	name          string
	record        models.BidRecord
}

// BuildTimeSeries produces one forward-filled point per bid record, ordered by
// CreatedAt. Equal timestamps keep participant order, then bid order.
// With no participants it returns the two-point placeholder series and an
// empty participant list.
func (b *Builder) BuildTimeSeries(participants []models.Participant) models.TimeSeries {
	if len(participants) == 0 {
		return b.placeholder()
	}

	var events []taggedBid
	for _, p := range participants {
		name := DisplayName(p)
		for _, rec := range p.BidRecords {
			events = append(events, taggedBid{participantID: p.ParticipantID, name: name, record: rec})
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].record.CreatedAt.Before(events[j].record.CreatedAt)
	})

	state := make(map[string]models.ParticipantAmount, len(participants))
	points := make([]models.TimeSeriesPoint, 0, len(events))
	for _, ev := range events {
		state[ev.participantID] = models.ParticipantAmount{Amount: ev.record.BidAmount, Name: ev.name}
		points = append(points, models.TimeSeriesPoint{
			Timestamp:    ev.record.CreatedAt.UnixMilli(),
			DisplayLabel: b.label(ev.record.CreatedAt),
			Participants: copySnapshot(state),
		})
	}

	return models.TimeSeries{
		Points:       points,
		Participants: append([]models.Participant(nil), participants...),
	}
}

func (b *Builder) placeholder() models.TimeSeries {
	now := b.now()
	label := b.label(now)
	start := now.Add(-b.placeholderSpan)
	return models.TimeSeries{
		Points: []models.TimeSeriesPoint{
			{Timestamp: start.UnixMilli(), DisplayLabel: label, Participants: map[string]models.ParticipantAmount{}},
			{Timestamp: now.UnixMilli(), DisplayLabel: label, Participants: map[string]models.ParticipantAmount{}},
		},
		Participants: []models.Participant{},
	}
}

func (b *Builder) label(t time.Time) string {
	return t.In(b.location).Format(b.labelLayout)
}

// BuildBidIndexedSeries fans every time-wise point out into one point per
// participant present in its snapshot. Each participant carries its own 1-based
// counter across the walk. Participants inside a point are visited in the order
// they first appeared in the series; ties within one point fall back to id order.
//
// A participant that did not bid at a point still gets a point there because
// the snapshot is forward-filled, so the output is longer than the bid count
// whenever several participants are active.
func BuildBidIndexedSeries(points []models.TimeSeriesPoint) []models.BidIndexedPoint {
	sorted := append([]models.TimeSeriesPoint(nil), points...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	firstSeen := make(map[string]int)
	counters := make(map[string]int)
	out := []models.BidIndexedPoint{}

	for _, pt := range sorted {
		for _, id := range orderedIDs(pt.Participants, firstSeen) {
			counters[id]++
			out = append(out, models.BidIndexedPoint{
				BidNumber:    counters[id],
				BidLabel:     fmt.Sprintf("Bid %d", counters[id]),
				Timestamp:    pt.Timestamp,
				DisplayLabel: pt.DisplayLabel,
				Participants: copySnapshot(pt.Participants),
				BidderID:     id,
				BidderAmount: pt.Participants[id].Amount,
			})
		}
	}
	return out
}

// orderedIDs returns the snapshot's ids by first appearance, registering new ones in firstSeen
func orderedIDs(snapshot map[string]models.ParticipantAmount, firstSeen map[string]int) []string {
	var known, fresh []string
	for id := range snapshot {
		if _, ok := firstSeen[id]; ok {
			known = append(known, id)
		} else {
			fresh = append(fresh, id)
		}
	}
	sort.Slice(known, func(i, j int) bool { return firstSeen[known[i]] < firstSeen[known[j]] })
	sort.Strings(fresh)
	for _, id := range fresh {
		firstSeen[id] = len(firstSeen)
	}
	return append(known, fresh...)
}

// CollectLegend returns the legend entries for the given mode and the ids that
// current does not know about yet. It never writes to current; committing the
// newly observed ids is left to the caller once rendering is done.
func CollectLegend(mode models.ChartMode, series models.TimeSeries, bidSeries []models.BidIndexedPoint, current visibility.Map) models.Legend {
	entries := []models.LegendParticipant{}
	seen := make(map[string]struct{})
	add := func(id, name string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		entries = append(entries, models.LegendParticipant{ParticipantID: id, DisplayName: name})
	}

	switch mode {
	case models.ModeBidWise:
		for _, pt := range bidSeries {
			add(pt.BidderID, pt.Participants[pt.BidderID].Name)
		}
	default:
		for _, p := range series.Participants {
			add(p.ParticipantID, DisplayName(p))
		}
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ParticipantID)
	}

	return models.Legend{
		Entries:       entries,
		NewlyObserved: current.Missing(ids),
	}
}

func copySnapshot(in map[string]models.ParticipantAmount) map[string]models.ParticipantAmount {
	out := make(map[string]models.ParticipantAmount, len(in))
	for id, v := range in {
		out[id] = v
	}
	return out
}
