// Package presenter は商品情報を「Product Info」ダイアログとして表示します。
package presenter

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"jo3qma.com/product_bubble/internal/domain/model"
)

// DialogTitle はダイアログのタイトルです
const DialogTitle = "Product Info"

// Alert は商品情報をテキストのアラートとして io.Writer に書き出します
type Alert struct {
	mu sync.Mutex
	w  io.Writer
}

// NewAlert は新しいAlertを作成します
func NewAlert(w io.Writer) *Alert {
	return &Alert{w: w}
}

// Present はアラートを書き出します
func (a *Alert) Present(p *model.Product) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := WriteAlert(a.w, p); err != nil {
		log.Printf("warning: failed to write alert: %v", err)
	}
}

// WriteAlert は商品情報をテキストのダイアログとして書き出します
// 値は加工せずにそのまま表示します
func WriteAlert(w io.Writer, p *model.Product) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "┌ %s\n", DialogTitle)
	for _, f := range Fields(p) {
		fmt.Fprintf(bw, "│ %-14s %s\n", f.Label+":", f.Value)
	}
	fmt.Fprintln(bw, "└ [OK]")

	return bw.Flush()
}

// Field はダイアログの1行です
type Field struct {
	Label string
	Value string
}

// Fields はダイアログに表示する行を表示順に返します
func Fields(p *model.Product) []Field {
	return []Field{
		{Label: "Name", Value: p.Name},
		{Label: "Price", Value: p.Price.String()},
		{Label: "Default price", Value: p.PriceLabel.DefaultPrice.String()},
		{Label: "Brand", Value: p.Brand.Name},
		{Label: "Seller", Value: p.Seller.Name},
		{Label: "Genre", Value: p.GenreCategory.Name},
		{Label: "Parent genres", Value: strings.Join(p.ParentGenreCategoryNames(), " > ")},
		{Label: "URL", Value: p.URL},
		{Label: "Image", Value: p.Image.Medium},
	}
}
