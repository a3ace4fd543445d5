package model

import "github.com/shopspring/decimal"

// Product はバーコード検索で見つかった商品のドメインモデルです
// 外部API（Yahoo!ショッピングなど）のJSON構造を知らない、読み取り専用のデータ構造です
// 表示のために一度だけ構築され、保存はされません
type Product struct {
	Name                  string
	Price                 decimal.Decimal // 販売価格（単位：円）
	URL                   string          // 商品ページのURL
	Image                 Image
	GenreCategory         GenreCategory
	Brand                 Brand
	Seller                Seller
	PriceLabel            PriceLabel
	ParentGenreCategories []GenreCategory // 上位のジャンルカテゴリ（浅い順）
}

// GenreCategory はジャンルカテゴリです
type GenreCategory struct {
	Name string
}

// Brand はブランドです
type Brand struct {
	Name string
}

// Seller はストア（出品者）です
type Seller struct {
	Name string
}

// PriceLabel は価格表示ラベルです
type PriceLabel struct {
	DefaultPrice decimal.Decimal // 通常価格
}

// Image は商品画像です
type Image struct {
	Medium string // 中サイズ画像のURL
}

// ParentGenreCategoryNames は上位ジャンルカテゴリ名の一覧を返します
func (p *Product) ParentGenreCategoryNames() []string {
	names := make([]string, 0, len(p.ParentGenreCategories))
	for _, c := range p.ParentGenreCategories {
		names = append(names, c.Name)
	}
	return names
}
