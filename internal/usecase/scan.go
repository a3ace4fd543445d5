package usecase

import (
	"context"
	"log"

	"jo3qma.com/product_bubble/internal/domain/model"
)

// ProductFinder はバーコードから商品を1件取得します
type ProductFinder interface {
	FindProduct(ctx context.Context, barcode string) (*model.Product, error)
}

// ProductPresenter は見つかった商品を表示します
type ProductPresenter interface {
	Present(product *model.Product)
}

// ScanUsecase はスキャンしたバーコードの商品を表示するユースケースです
// 失敗（通信エラー、JSONの不正、0件）はログに残して握りつぶし、
// ユーザーには何も表示しません。リトライもしません
type ScanUsecase struct {
	finder    ProductFinder
	presenter ProductPresenter
	logger    *log.Logger
}

// ScanOption はScanUsecaseの設定を変更します
type ScanOption func(*ScanUsecase)

// WithLogger は診断ログの出力先を指定します（デフォルトは log.Default()）
func WithLogger(l *log.Logger) ScanOption {
	return func(u *ScanUsecase) {
		u.logger = l
	}
}

// NewScanUsecase は新しいScanUsecaseインスタンスを作成します
func NewScanUsecase(finder ProductFinder, presenter ProductPresenter, opts ...ScanOption) *ScanUsecase {
	u := &ScanUsecase{
		finder:    finder,
		presenter: presenter,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// ShowProduct はバーコードの商品を検索し、見つかれば表示します
// 表示した場合は true を返します
func (u *ScanUsecase) ShowProduct(ctx context.Context, barcode string) bool {
	product, err := u.finder.FindProduct(ctx, barcode)
	if err != nil {
		u.logger.Printf("⚠️ product lookup for %q dropped: %v", barcode, err)
		return false
	}

	u.logger.Printf("Product info: %s", product.Name)
	u.presenter.Present(product)
	return true
}
