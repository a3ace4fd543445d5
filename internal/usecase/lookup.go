package usecase

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"jo3qma.com/product_bubble/internal/domain/model"
	"jo3qma.com/product_bubble/internal/domain/repository"
)

// LookupUsecase はバーコードから商品を1件特定するビジネスロジックを担当します
type LookupUsecase struct {
	repo repository.ProductRepository
}

// NewLookupUsecase は新しいLookupUsecaseインスタンスを作成します
func NewLookupUsecase(repo repository.ProductRepository) *LookupUsecase {
	return &LookupUsecase{
		repo: repo,
	}
}

// FindProduct は指定されたバーコードに一致する最初の商品を返します
// バーコードはそのまま（トリムなどの加工をせずに）検索に使います
func (u *LookupUsecase) FindProduct(ctx context.Context, barcode string) (*model.Product, error) {
	if strings.TrimSpace(barcode) == "" {
		return nil, model.ErrInvalidBarcode
	}

	products, err := u.repo.SearchByBarcode(ctx, barcode)
	if err != nil {
		return nil, errors.Wrapf(err, "search %s", barcode)
	}

	// 先頭の1件だけを採用する
	for _, p := range products {
		if p != nil {
			return p, nil
		}
	}

	return nil, model.ErrProductNotFound
}
