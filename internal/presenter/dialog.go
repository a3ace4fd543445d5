package presenter

import (
	"html/template"
	"io"

	"jo3qma.com/product_bubble/internal/domain/model"
)

var dialogTemplate = template.Must(template.New("dialog").Parse(`<div class="modal" role="dialog" aria-labelledby="product-dialog-title">
  <h2 id="product-dialog-title">{{.Title}}</h2>
  {{- with .Product.Image.Medium}}
  <img class="product-image" src="{{.}}" alt="">
  {{- end}}
  <dl class="product-fields">
  {{- range .Fields}}
    <dt>{{.Label}}</dt><dd>{{.Value}}</dd>
  {{- end}}
  </dl>
  <a class="product-link" href="{{.Product.URL}}">{{.Product.Name}}</a>
  <button type="button" class="modal-ok">OK</button>
</div>
`))

// RenderDialog は商品情報をHTMLのモーダルとして書き出します
// 値はテンプレートでエスケープされます
func RenderDialog(w io.Writer, p *model.Product) error {
	return dialogTemplate.Execute(w, struct {
		Title   string
		Product *model.Product
		Fields  []Field
	}{
		Title:   DialogTitle,
		Product: p,
		Fields:  Fields(p),
	})
}
