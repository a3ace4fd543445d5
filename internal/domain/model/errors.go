package model

import "github.com/go-faster/errors"

var (
	// ErrInvalidBarcode はバーコードが空のときに返されます
	ErrInvalidBarcode = errors.New("invalid barcode")

	// ErrProductNotFound は検索結果が0件のときに返されます
	ErrProductNotFound = errors.New("product not found")
)
