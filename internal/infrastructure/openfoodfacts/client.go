package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-faster/errors"
	"jo3qma.com/product_bubble/internal/domain/model"
	"jo3qma.com/product_bubble/internal/domain/repository"
)

// DefaultBaseURL はOpen Food FactsのベースURLです
const DefaultBaseURL = "https://world.openfoodfacts.org"

// client はOpen Food Factsの商品APIから商品情報を取得する実装です
// 価格情報は持たないため、Price はゼロ値になります
type client struct {
	client  *http.Client
	baseURL string
}

// NewClient は新しいOpen Food Factsクライアントを作成します
func NewClient(httpClient *http.Client, baseURL string) repository.ProductRepository {
	return &client{
		client:  httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// productResponse は /api/v0/product/{barcode}.json のレスポンスです
type productResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Product struct {
		ProductName string `json:"product_name"`
		Brands      string `json:"brands"`
		ImageURL    string `json:"image_url"`
		Categories  string `json:"categories"`
		Stores      string `json:"stores"`
	} `json:"product"`
}

// SearchByBarcode はバーコードで商品を検索します
// 見つからない場合（status が1以外）は空のスライスを返します
func (c *client) SearchByBarcode(ctx context.Context, barcode string) ([]*model.Product, error) {
	u := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, url.PathEscape(barcode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", "product-bubble/1.0")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch product")
	}
	defer func() {
		if closeErr := res.Body.Close(); closeErr != nil {
			log.Printf("warning: failed to close response body: %v", closeErr)
		}
	}()

	// 未登録のバーコードは404でも status:0 のJSONが返る
	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusNotFound {
		return nil, errors.Errorf("failed to fetch product: status %d", res.StatusCode)
	}

	var data productResponse
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, errors.Wrap(err, "failed to decode JSON")
	}

	if data.Status != 1 {
		return []*model.Product{}, nil
	}

	return []*model.Product{c.toProduct(&data, barcode)}, nil
}

// toProduct はレスポンスからドメインモデルのProductを構築します
// レスポンスに code が無い場合は検索したバーコードで商品ページのURLを作ります
func (c *client) toProduct(data *productResponse, barcode string) *model.Product {
	code := data.Code
	if code == "" {
		code = barcode
	}
	p := &model.Product{
		Name:   data.Product.ProductName,
		URL:    fmt.Sprintf("%s/product/%s", c.baseURL, url.PathEscape(code)),
		Image:  model.Image{Medium: data.Product.ImageURL},
		Brand:  model.Brand{Name: firstOf(data.Product.Brands)},
		Seller: model.Seller{Name: firstOf(data.Product.Stores)},
	}

	// カテゴリは「食品, 飲料, 水」のように浅い順に並んでいる
	categories := splitList(data.Product.Categories)
	if n := len(categories); n > 0 {
		p.GenreCategory = model.GenreCategory{Name: categories[n-1]}
		for _, name := range categories[:n-1] {
			p.ParentGenreCategories = append(p.ParentGenreCategories, model.GenreCategory{Name: name})
		}
	}

	return p
}

// splitList はカンマ区切りの文字列を分割し、空要素を取り除きます
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func firstOf(s string) string {
	if list := splitList(s); len(list) > 0 {
		return list[0]
	}
	return ""
}
