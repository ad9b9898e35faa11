// Package comparison reduces the latest bid of every vendor into a ranked
// totals table.
package comparison

import (
	"sort"

	"bidchart/internal/bidseries"
	"bidchart/internal/models"

	"github.com/shopspring/decimal"
)

const totalPlaces = 2

// Build ranks the participants that bid by the total of their latest bid, lowest first
func Build(auction models.Auction) models.Comparison {
	rows := []models.ComparisonRow{}

	for _, p := range bidseries.SelectParticipantsWithBids(auction.Participants) {
		latest := latestBid(p.BidRecords)
		lineTotals, total := totals(latest)

		row := models.ComparisonRow{
			ParticipantID: p.ParticipantID,
			DisplayName:   bidseries.DisplayName(p),
			BidID:         latest.BidID,
			LineTotals:    lineTotals,
			Total:         total.InexactFloat64(),
		}
		if auction.LeadingPrice != nil {
			delta := total.Sub(decimal.NewFromFloat(*auction.LeadingPrice)).Round(totalPlaces).InexactFloat64()
			row.DeltaFromLeading = &delta
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total < rows[j].Total
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}

	return models.Comparison{AuctionID: auction.AuctionID, Rows: rows}
}

// latestBid returns the record with the greatest CreatedAt; later entries win ties
func latestBid(records []models.BidRecord) models.BidRecord {
	latest := records[0]
	for _, rec := range records[1:] {
		if !rec.CreatedAt.Before(latest.CreatedAt) {
			latest = rec
		}
	}
	return latest
}

// totals sums quantity times unit price per line item. A bid without line items totals to its amount.
func totals(rec models.BidRecord) (map[string]float64, decimal.Decimal) {
	lineTotals := make(map[string]float64, len(rec.LineItems))
	if len(rec.LineItems) == 0 {
		return lineTotals, decimal.NewFromFloat(rec.BidAmount).Round(totalPlaces)
	}

	sum := decimal.Zero
	for _, li := range rec.LineItems {
		line := decimal.NewFromFloat(li.Quantity).Mul(decimal.NewFromFloat(li.UnitPrice))
		sum = sum.Add(line)

		key := li.ItemID
		if key == "" {
			key = li.Description
		}
		prev := decimal.NewFromFloat(lineTotals[key])
		lineTotals[key] = prev.Add(line).Round(totalPlaces).InexactFloat64()
	}
	return lineTotals, sum.Round(totalPlaces)
}
