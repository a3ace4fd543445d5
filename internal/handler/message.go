package handler

// productbubble.v1.ProductService のメッセージです
// JSONコーデックでやり取りするため、フィールド名は lowerCamelCase で固定します

// LookupBarcodeRequest はバーコード検索のリクエストです
type LookupBarcodeRequest struct {
	Barcode string `json:"barcode"`
}

// LookupBarcodeResponse はバーコード検索のレスポンスです
type LookupBarcodeResponse struct {
	Product *Product `json:"product"`
}

// Product は検索結果の商品です
// 価格は小数を丸めずに渡すため文字列で表現します
type Product struct {
	Name                  string   `json:"name"`
	Price                 string   `json:"price"`
	URL                   string   `json:"url"`
	ImageURL              string   `json:"imageUrl"`
	GenreCategory         string   `json:"genreCategory"`
	Brand                 string   `json:"brand"`
	Seller                string   `json:"seller"`
	DefaultPrice          string   `json:"defaultPrice"`
	ParentGenreCategories []string `json:"parentGenreCategories"`
}
