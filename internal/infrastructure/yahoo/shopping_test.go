package yahoo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

const itemSearchBody = `{
  "totalResultsAvailable": 2,
  "totalResultsReturned": 2,
  "firstResultsPosition": 1,
  "hits": [
    {
      "index": 1,
      "name": "サントリー 天然水 550ml×24本",
      "price": 2180,
      "url": "https://store.shopping.yahoo.co.jp/example/4901777018686.html",
      "image": {"small": "https://example.com/s.jpg", "medium": "https://example.com/m.jpg"},
      "genreCategory": {"id": 4366, "name": "水、ミネラルウォーター", "depth": 3},
      "parentGenreCategories": [
        {"depth": 1, "id": 2498, "name": "食品"},
        {"depth": 2, "id": 4357, "name": "水、ソフトドリンク"}
      ],
      "brand": {"id": 8839, "name": "サントリー天然水"},
      "seller": {"sellerId": "example", "name": "サンプルストア"},
      "priceLabel": {"taxable": true, "defaultPrice": 2480.5, "discountedPrice": null}
    },
    {
      "index": 2,
      "name": "second",
      "price": 1
    }
  ]
}`

func TestShoppingClient_itemSearchURL_embedsLiteralKeyAndBarcode(t *testing.T) {
	t.Parallel()

	c := &shoppingClient{baseURL: DefaultBaseURL, appID: "dj00aiZpPVhYWFhYWFgmcz1jb25zdW1lcnNlY3JldCZ4PTk5"}

	got, err := c.itemSearchURL("4901777018686")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "https://shopping.yahooapis.jp/ShoppingWebService/V3/itemSearch?appid=dj00aiZpPVhYWFhYWFgmcz1jb25zdW1lcnNlY3JldCZ4PTk5&jan_code=4901777018686"
	if got != want {
		t.Fatalf("url got %q, want %q", got, want)
	}
}

func TestShoppingClient_itemSearchURL_addsResultsWhenSet(t *testing.T) {
	t.Parallel()

	c := &shoppingClient{baseURL: "http://localhost:9999", appID: "key", results: 5}

	got, err := c.itemSearchURL("123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "http://localhost:9999/ShoppingWebService/V3/itemSearch?appid=key&jan_code=123&results=5"
	if got != want {
		t.Fatalf("url got %q, want %q", got, want)
	}
}

func TestShoppingClient_SearchByBarcode_mapsHits(t *testing.T) {
	t.Parallel()

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != itemSearchPath {
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(itemSearchBody))
	}))
	defer srv.Close()

	c := NewShoppingClient(&http.Client{Timeout: 5 * time.Second}, srv.URL+"/", "key", 0)

	products, err := c.SearchByBarcode(context.Background(), "4901777018686")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery != "appid=key&jan_code=4901777018686" {
		t.Fatalf("query got %q", gotQuery)
	}
	if len(products) != 2 {
		t.Fatalf("products len got %d, want %d", len(products), 2)
	}

	p := products[0]
	if p.Name != "サントリー 天然水 550ml×24本" {
		t.Fatalf("Name got %q", p.Name)
	}
	if !p.Price.Equal(decimal.NewFromInt(2180)) {
		t.Fatalf("Price got %s, want %s", p.Price, "2180")
	}
	if p.URL != "https://store.shopping.yahoo.co.jp/example/4901777018686.html" {
		t.Fatalf("URL got %q", p.URL)
	}
	if p.Image.Medium != "https://example.com/m.jpg" {
		t.Fatalf("Image.Medium got %q", p.Image.Medium)
	}
	if p.GenreCategory.Name != "水、ミネラルウォーター" {
		t.Fatalf("GenreCategory got %q", p.GenreCategory.Name)
	}
	if p.Brand.Name != "サントリー天然水" {
		t.Fatalf("Brand got %q", p.Brand.Name)
	}
	if p.Seller.Name != "サンプルストア" {
		t.Fatalf("Seller got %q", p.Seller.Name)
	}
	if p.PriceLabel.DefaultPrice.String() != "2480.5" {
		t.Fatalf("DefaultPrice got %s, want %s", p.PriceLabel.DefaultPrice, "2480.5")
	}
	names := p.ParentGenreCategoryNames()
	if len(names) != 2 || names[0] != "食品" || names[1] != "水、ソフトドリンク" {
		t.Fatalf("ParentGenreCategories got %#v", names)
	}

	// 欠けているフィールドはゼロ値
	second := products[1]
	if second.Brand.Name != "" || second.Image.Medium != "" || second.ParentGenreCategories != nil {
		t.Fatalf("missing fields should be zero, got %+v", second)
	}
	if !second.PriceLabel.DefaultPrice.IsZero() {
		t.Fatalf("DefaultPrice got %s, want 0", second.PriceLabel.DefaultPrice)
	}
}

func TestShoppingClient_SearchByBarcode_emptyHits(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"totalResultsAvailable": 0, "hits": []any{}})
	}))
	defer srv.Close()

	c := NewShoppingClient(srv.Client(), srv.URL, "key", 0)

	products, err := c.SearchByBarcode(context.Background(), "0000000000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("products len got %d, want 0", len(products))
	}
}

func TestShoppingClient_SearchByBarcode_returnsErrorWhenJSONInvalid(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{invalid json}`))
	}))
	defer srv.Close()

	c := NewShoppingClient(srv.Client(), srv.URL, "key", 0)

	if _, err := c.SearchByBarcode(context.Background(), "4901777018686"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestShoppingClient_SearchByBarcode_surfacesAPIErrorMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"Error":{"Message":"Your Request was Forbidden"}}`))
	}))
	defer srv.Close()

	c := NewShoppingClient(srv.Client(), srv.URL, "bad", 0)

	_, err := c.SearchByBarcode(context.Background(), "4901777018686")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "400") || !strings.Contains(err.Error(), "Your Request was Forbidden") {
		t.Fatalf("error got %q", err.Error())
	}
}

func TestShoppingClient_SearchByBarcode_returnsErrorOnNetworkFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewShoppingClient(&http.Client{Timeout: time.Second}, url, "key", 0)

	if _, err := c.SearchByBarcode(context.Background(), "4901777018686"); err == nil {
		t.Fatalf("expected error")
	}
}
