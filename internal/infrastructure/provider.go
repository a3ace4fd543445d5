// Package infrastructure は設定に応じて外部APIの実装を組み立てます。
package infrastructure

import (
	"net/http"

	"github.com/go-faster/errors"
	"jo3qma.com/product_bubble/internal/config"
	"jo3qma.com/product_bubble/internal/domain/repository"
	"jo3qma.com/product_bubble/internal/infrastructure/openfoodfacts"
	"jo3qma.com/product_bubble/internal/infrastructure/yahoo"
)

// NewProductRepository は設定された取得元の ProductRepository を作成します
func NewProductRepository(cfg *config.Config) (repository.ProductRepository, error) {
	client := &http.Client{Timeout: cfg.HTTPTimeout}

	switch cfg.Provider {
	case config.ProviderYahoo:
		return yahoo.NewShoppingClient(client, cfg.YahooBaseURL, cfg.YahooAppID, cfg.YahooResults), nil
	case config.ProviderOpenFoodFacts:
		return openfoodfacts.NewClient(client, cfg.OpenFoodFactsBaseURL), nil
	default:
		return nil, errors.Errorf("unknown provider %q", cfg.Provider)
	}
}
