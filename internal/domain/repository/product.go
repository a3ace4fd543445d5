package repository

import (
	"context"

	"jo3qma.com/product_bubble/internal/domain/model"
)

// ProductRepository はバーコードから商品を検索する方法を抽象化します。
// 実装がYahoo!ショッピングなのか、Open Food Factsなのかはドメイン層は知りません。
// これにより、腐敗防止層（Anti-Corruption Layer）のパターンを実現します。
type ProductRepository interface {
	// SearchByBarcode は指定されたバーコード（JANコード）に一致する商品を検索します
	// 見つからない場合は空のスライスを返します
	SearchByBarcode(ctx context.Context, barcode string) ([]*model.Product, error)
}
