package integrationtests

import (
	"bidchart/internal/bidseries"
	chart "bidchart/internal/chartService"
	"bidchart/internal/repository"
	"bidchart/internal/server"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupTestRouter initializes the router with in-memory repository for integration testing.
func SetupTestRouter() (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	service := chart.NewChartService(repo, bidseries.NewBuilder())
	router := server.SetupRouter(service)
	return router, repo
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// CreateAuction creates an auction through the API and returns its id
func CreateAuction(t *testing.T, router *gin.Engine, title string, leadingPrice *float64) string {
	body := map[string]any{"title": title}
	if leadingPrice != nil {
		body["leading_price"] = *leadingPrice
	}
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions", body)
	require.Equal(t, http.StatusCreated, w.Code)
	return resp["data"].(map[string]any)["auction_id"].(string)
}

// AddParticipant adds a participant through the API
func AddParticipant(t *testing.T, router *gin.Engine, auctionID, participantID, name, company string) {
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/"+auctionID+"/participants", map[string]any{
		"participant_id":      participantID,
		"name":                name,
		"vendor_company_name": company,
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

// RecordBid records a bid through the API
func RecordBid(t *testing.T, router *gin.Engine, auctionID, participantID string, body map[string]any) {
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/"+auctionID+"/participants/"+participantID+"/bids", body)
	require.Equal(t, http.StatusCreated, w.Code)
}
