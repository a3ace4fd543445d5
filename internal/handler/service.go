package handler

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const (
	// ProductServiceName はサービスの完全修飾名です
	ProductServiceName = "productbubble.v1.ProductService"

	// LookupBarcodeProcedure は LookupBarcode RPC のパスです
	LookupBarcodeProcedure = "/" + ProductServiceName + "/LookupBarcode"
)

// NewProductServiceHandler はConnectのハンドラーを作成し、登録先のパスと共に返します
func NewProductServiceHandler(h *ProductHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	lookup := connect.NewUnaryHandler(LookupBarcodeProcedure, h.LookupBarcode, opts...)

	return "/" + ProductServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case LookupBarcodeProcedure:
			lookup.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// ProductServiceClient は ProductService のクライアントです
type ProductServiceClient struct {
	lookup *connect.Client[LookupBarcodeRequest, LookupBarcodeResponse]
}

// NewProductServiceClient は baseURL（例: http://localhost:8080）のサーバーに接続するクライアントを作成します
func NewProductServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ProductServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)

	return &ProductServiceClient{
		lookup: connect.NewClient[LookupBarcodeRequest, LookupBarcodeResponse](
			httpClient,
			baseURL+LookupBarcodeProcedure,
			opts...,
		),
	}
}

// LookupBarcode はバーコードから商品情報を取得します
func (c *ProductServiceClient) LookupBarcode(ctx context.Context, barcode string) (*Product, error) {
	res, err := c.lookup.CallUnary(ctx, connect.NewRequest(&LookupBarcodeRequest{Barcode: barcode}))
	if err != nil {
		return nil, err
	}
	return res.Msg.Product, nil
}
