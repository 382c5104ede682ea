package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"zenfinance/internal/rates"
)

func setupRateRouter(handler *RateHandler) *gin.Engine {
	r := gin.New()
	r.GET("/rates", handler.GetRate)
	return r
}

func TestRateHandler_GetRate(t *testing.T) {
	t.Run("returns the fetched rate", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"rates": map[string]float64{"RUB": 93.5},
			})
		}))
		defer upstream.Close()

		fetcher := rates.NewFetcher(upstream.Client(), upstream.URL, "RUB", "USD", 92, time.Second)
		r := setupRateRouter(NewRateHandler(fetcher))

		rec := doRequest(r, "GET", "/rates", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["rate"].(float64) != 93.5 {
			t.Errorf("expected rate 93.5, got %v", result["rate"])
		}
	})

	t.Run("serves the fallback when upstream is down", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer upstream.Close()

		fetcher := rates.NewFetcher(upstream.Client(), upstream.URL, "RUB", "USD", 92, time.Second)
		r := setupRateRouter(NewRateHandler(fetcher))

		rec := doRequest(r, "GET", "/rates", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["rate"].(float64) != 92 {
			t.Errorf("expected fallback 92, got %v", result["rate"])
		}
	})
}
