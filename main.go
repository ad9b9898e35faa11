package main

import (
	"bidchart/internal/bidseries"
	chart "bidchart/internal/chartService"
	"bidchart/internal/config"
	"bidchart/internal/repository"
	"bidchart/internal/server"
	"bidchart/utils"
	"os"
	"time"
)

func main() {
	cfg, err := config.Load(os.Getenv("BIDCHART_CONFIG"))
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}
	if err := utils.SetLevel(cfg.Logging.Level); err != nil {
		utils.Fatal("failed to set log level", map[string]any{"error": err.Error()})
	}

	repo := repository.NewMemoryRepo()

	builder := bidseries.NewBuilder(
		bidseries.WithLabelLayout(cfg.Chart.LabelLayout),
		bidseries.WithLocation(cfg.Chart.Location),
		bidseries.WithPlaceholderSpan(cfg.Chart.PlaceholderSpan),
	)
	chartSvc := chart.NewChartService(repo, builder)

	if cfg.SeedDemo {
		if err := seedDemoAuction(chartSvc); err != nil {
			utils.Fatal("failed to seed demo auction", map[string]any{"error": err.Error()})
		}
	}

	router := server.SetupRouter(chartSvc)

	utils.Info("starting chart server", map[string]any{"addr": cfg.Addr()})
	if err := router.Run(cfg.Addr()); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}

// seedDemoAuction adds a sample reverse auction with a few bids
func seedDemoAuction(svc *chart.ChartService) error {
	leading := 1150.0
	auction, err := svc.CreateAuction("Demo: structural steel", &leading)
	if err != nil {
		return err
	}

	vendors := []struct {
		id, name, company string
		bids              []float64
	}{
		{id: "vendor-a", name: "Ana", company: "Northwind Metals", bids: []float64{1400, 1250, 1120}},
		{id: "vendor-b", name: "Ben", company: "Contoso Steel", bids: []float64{1380, 1150}},
		{id: "vendor-c", name: "Cy", bids: []float64{1300}},
	}

	start := time.Now().UTC().Add(-30 * time.Minute)
	for i, v := range vendors {
		if _, err := svc.AddParticipant(auction.AuctionID, v.id, v.name, v.company); err != nil {
			return err
		}
		for j, amount := range v.bids {
			at := start.Add(time.Duration(j*7+i*2) * time.Minute)
			if _, err := svc.RecordBid(auction.AuctionID, v.id, chart.BidInput{BidAmount: amount, CreatedAt: at}); err != nil {
				return err
			}
		}
	}

	utils.Info("seeded demo auction", map[string]any{"auction_id": auction.AuctionID})
	return nil
}
