package yahoo

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/go-querystring/query"
	"github.com/shopspring/decimal"
	"jo3qma.com/product_bubble/internal/domain/model"
	"jo3qma.com/product_bubble/internal/domain/repository"
)

// DefaultBaseURL はYahoo!ショッピングWeb APIのベースURLです
const DefaultBaseURL = "https://shopping.yahooapis.jp"

const itemSearchPath = "/ShoppingWebService/V3/itemSearch"

// shoppingClient はYahoo!ショッピングの商品検索APIから商品情報を取得する実装です
// 腐敗防止層（Anti-Corruption Layer）として、外部APIのJSON構造を
// ドメインモデルに変換する責務を持ちます
type shoppingClient struct {
	client  *http.Client
	baseURL string
	appID   string
	results int
}

// NewShoppingClient は新しいShoppingClientインスタンスを作成します
// results が0の場合は件数を指定せず、APIのデフォルトに従います
func NewShoppingClient(client *http.Client, baseURL, appID string, results int) repository.ProductRepository {
	return &shoppingClient{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		appID:   appID,
		results: results,
	}
}

// itemSearchParams は商品検索APIのクエリパラメータです
type itemSearchParams struct {
	AppID   string `url:"appid"`
	JANCode string `url:"jan_code"`
	Results int    `url:"results,omitempty"`
}

// SearchByBarcode はJANコードで商品を検索します
func (c *shoppingClient) SearchByBarcode(ctx context.Context, barcode string) ([]*model.Product, error) {
	u, err := c.itemSearchURL(barcode)
	if err != nil {
		return nil, err
	}

	var resp ItemSearchResponse
	if err := fetchJSON(ctx, c.client, u, &resp); err != nil {
		return nil, errors.Wrap(err, "item search")
	}

	return resp.toProducts(), nil
}

// itemSearchURL はAPIキーとバーコードを埋め込んだ検索URLを構築します
func (c *shoppingClient) itemSearchURL(barcode string) (string, error) {
	u, err := url.Parse(c.baseURL + itemSearchPath)
	if err != nil {
		return "", errors.Wrap(err, "invalid base url")
	}

	v, err := query.Values(itemSearchParams{
		AppID:   c.appID,
		JANCode: barcode,
		Results: c.results,
	})
	if err != nil {
		return "", errors.Wrap(err, "encode query")
	}

	u.RawQuery = v.Encode()
	return u.String(), nil
}

// ItemSearchResponse は商品検索APIのレスポンスです
type ItemSearchResponse struct {
	TotalResultsAvailable int   `json:"totalResultsAvailable"`
	TotalResultsReturned  int   `json:"totalResultsReturned"`
	Hits                  []Hit `json:"hits"`
}

// Hit は検索結果の商品1件です
// 欠けているフィールドやnullはゼロ値として扱います
type Hit struct {
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	URL           string          `json:"url"`
	Image         hitImage        `json:"image"`
	GenreCategory hitNamed        `json:"genreCategory"`
	Brand         hitNamed        `json:"brand"`
	Seller        hitNamed        `json:"seller"`
	PriceLabel    struct {
		DefaultPrice decimal.Decimal `json:"defaultPrice"`
	} `json:"priceLabel"`
	ParentGenreCategories []hitNamed `json:"parentGenreCategories"`
}

type hitNamed struct {
	Name string `json:"name"`
}

type hitImage struct {
	Medium string `json:"medium"`
}

// toProducts はレスポンスをドメインモデルの一覧に変換します
func (r *ItemSearchResponse) toProducts() []*model.Product {
	products := make([]*model.Product, 0, len(r.Hits))
	for i := range r.Hits {
		products = append(products, r.Hits[i].toProduct())
	}
	return products
}

// toProduct は1件のHitからドメインモデルのProductを構築します
func (h *Hit) toProduct() *model.Product {
	p := &model.Product{
		Name:          h.Name,
		Price:         h.Price,
		URL:           h.URL,
		Image:         model.Image{Medium: h.Image.Medium},
		GenreCategory: model.GenreCategory{Name: h.GenreCategory.Name},
		Brand:         model.Brand{Name: h.Brand.Name},
		Seller:        model.Seller{Name: h.Seller.Name},
		PriceLabel:    model.PriceLabel{DefaultPrice: h.PriceLabel.DefaultPrice},
	}

	// 上位カテゴリ
	if len(h.ParentGenreCategories) > 0 {
		p.ParentGenreCategories = make([]model.GenreCategory, 0, len(h.ParentGenreCategories))
		for _, c := range h.ParentGenreCategories {
			p.ParentGenreCategories = append(p.ParentGenreCategories, model.GenreCategory{Name: c.Name})
		}
	}

	return p
}
