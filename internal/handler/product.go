package handler

import (
	"bytes"
	"context"
	"log"
	"net/http"

	"connectrpc.com/connect"
	"github.com/go-faster/errors"
	"github.com/gorilla/mux"
	"jo3qma.com/product_bubble/internal/domain/model"
	"jo3qma.com/product_bubble/internal/presenter"
)

// ProductFinder はバーコードから商品を1件取得します
type ProductFinder interface {
	FindProduct(ctx context.Context, barcode string) (*model.Product, error)
}

// ProductHandler はConnectとHTTPのハンドラー実装です
// プロトコル層とドメイン層（usecase）を橋渡しします
type ProductHandler struct {
	uc ProductFinder
}

// NewProductHandler は新しいProductHandlerインスタンスを作成します
func NewProductHandler(uc ProductFinder) *ProductHandler {
	return &ProductHandler{
		uc: uc,
	}
}

// LookupBarcode はバーコードから商品情報を取得するRPCハンドラーです
func (h *ProductHandler) LookupBarcode(
	ctx context.Context,
	req *connect.Request[LookupBarcodeRequest],
) (*connect.Response[LookupBarcodeResponse], error) {
	product, err := h.uc.FindProduct(ctx, req.Msg.Barcode)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&LookupBarcodeResponse{
		Product: toMessage(product),
	}), nil
}

// ServeDialog は GET /products/{barcode} で商品情報のダイアログをHTMLで返します
func (h *ProductHandler) ServeDialog(w http.ResponseWriter, r *http.Request) {
	barcode := mux.Vars(r)["barcode"]

	product, err := h.uc.FindProduct(r.Context(), barcode)
	if err != nil {
		http.Error(w, http.StatusText(httpStatus(err)), httpStatus(err))
		return
	}

	var buf bytes.Buffer
	if err := presenter.RenderDialog(&buf, product); err != nil {
		log.Printf("❌ failed to render dialog for %q: %v", barcode, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("warning: failed to write dialog: %v", err)
	}
}

// toConnectError はドメインのエラーをConnectのエラーコードに変換します
func toConnectError(err error) *connect.Error {
	switch {
	case errors.Is(err, model.ErrInvalidBarcode):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, model.ErrProductNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeUnavailable, err)
	}
}

func httpStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidBarcode):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrProductNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// toMessage はドメインモデルをレスポンスのメッセージに変換します
func toMessage(p *model.Product) *Product {
	return &Product{
		Name:                  p.Name,
		Price:                 p.Price.String(),
		URL:                   p.URL,
		ImageURL:              p.Image.Medium,
		GenreCategory:         p.GenreCategory.Name,
		Brand:                 p.Brand.Name,
		Seller:                p.Seller.Name,
		DefaultPrice:          p.PriceLabel.DefaultPrice.String(),
		ParentGenreCategories: p.ParentGenreCategoryNames(),
	}
}
