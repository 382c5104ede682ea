package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestTransactionFlow_CreateListDelete(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "tx@test.com", "password123")

	// Record an income and two expenses
	app.createTransaction(t, token, 50000, "income", "Salary")
	app.createTransaction(t, token, 2295, "expense", "Food")
	txID := app.createTransaction(t, token, 500, "expense", "Taxi")

	// List everything
	rec := app.request("GET", "/api/v1/transactions", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	page := result["transactions"].(map[string]interface{})
	data := page["data"].([]interface{})
	if len(data) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(data))
	}
	// Newest first
	first := data[0].(map[string]interface{})
	if first["category"] != "Taxi" {
		t.Errorf("expected newest transaction first, got %v", first["category"])
	}

	// Filter by type
	rec = app.request("GET", "/api/v1/transactions?type=expense", "", token)
	result = parseJSON(t, rec)
	page = result["transactions"].(map[string]interface{})
	data = page["data"].([]interface{})
	if len(data) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(data))
	}

	// Fetch one by ID
	rec = app.request("GET", "/api/v1/transactions/"+txID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("get by id failed: %d %s", rec.Code, rec.Body.String())
	}
	result = parseJSON(t, rec)
	tx := result["transaction"].(map[string]interface{})
	if tx["amount"].(float64) != 500 {
		t.Errorf("expected amount 500, got %v", tx["amount"])
	}

	// Delete it
	rec = app.request("DELETE", "/api/v1/transactions/"+txID, "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}

	// Deleting again still succeeds
	rec = app.request("DELETE", "/api/v1/transactions/"+txID, "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected repeat delete to succeed, got %d: %s", rec.Code, rec.Body.String())
	}

	// The row is gone
	rec = app.request("GET", "/api/v1/transactions/"+txID, "", token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestTransactionFlow_ValidationErrors(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "txval@test.com", "password123")

	tests := []struct {
		name string
		body string
		code string
	}{
		{"zero amount", `{"amount":0,"type":"expense","category":"Food"}`, "INVALID_INPUT"},
		{"negative amount", `{"amount":-10,"type":"expense","category":"Food"}`, "INVALID_INPUT"},
		{"unknown type", `{"amount":10,"type":"transfer","category":"Food"}`, "INVALID_INPUT"},
		{"missing category", `{"amount":10,"type":"expense"}`, "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.request("POST", "/api/v1/transactions", tt.body, token)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			result := parseJSON(t, rec)
			errObj := result["error"].(map[string]interface{})
			if errObj["code"] != tt.code {
				t.Errorf("expected %s, got %v", tt.code, errObj["code"])
			}
		})
	}
}

func TestTransactionFlow_UserIsolation(t *testing.T) {
	app := setupApp(t)
	aliceToken, _ := app.registerUser(t, "alice@test.com", "password123")
	bobToken, _ := app.registerUser(t, "bob@test.com", "password123")

	txID := app.createTransaction(t, aliceToken, 100, "expense", "Food")

	// Bob cannot see Alice's transaction
	rec := app.request("GET", "/api/v1/transactions/"+txID, "", bobToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another user's transaction, got %d", rec.Code)
	}

	// Bob's delete attempt reports success but leaves the row in place
	rec = app.request("DELETE", "/api/v1/transactions/"+txID, "", bobToken)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/transactions/"+txID, "", aliceToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected Alice's transaction to survive, got %d", rec.Code)
	}

	// Bob's list is empty
	rec = app.request("GET", "/api/v1/transactions", "", bobToken)
	result := parseJSON(t, rec)
	page := result["transactions"].(map[string]interface{})
	data := page["data"].([]interface{})
	if len(data) != 0 {
		t.Errorf("expected empty list for bob, got %d rows", len(data))
	}
}

func TestTransactionFlow_Pagination(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "page@test.com", "password123")

	for i := 0; i < 5; i++ {
		app.createTransaction(t, token, float64(100+i), "expense", fmt.Sprintf("Cat%d", i))
	}

	rec := app.request("GET", "/api/v1/transactions?page=2&page_size=2", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	page := result["transactions"].(map[string]interface{})
	data := page["data"].([]interface{})
	if len(data) != 2 {
		t.Errorf("expected 2 rows on page 2, got %d", len(data))
	}
	if page["total_items"].(float64) != 5 {
		t.Errorf("expected total_items 5, got %v", page["total_items"])
	}
	if page["total_pages"].(float64) != 3 {
		t.Errorf("expected total_pages 3, got %v", page["total_pages"])
	}
}
