// Package config はコマンドライン引数と環境変数（.env を含む）から設定を読み込みます。
package config

import (
	"io/fs"
	"time"

	"github.com/go-faster/errors"
	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// 商品情報の取得元
const (
	ProviderYahoo         = "yahoo"
	ProviderOpenFoodFacts = "openfoodfacts"
)

// Config はアプリケーション全体の設定です
type Config struct {
	Provider string `long:"provider" env:"PRODUCT_PROVIDER" default:"yahoo" choice:"yahoo" choice:"openfoodfacts" description:"商品情報の取得元"`

	YahooAppID   string `long:"yahoo-app-id" env:"YAHOO_APP_ID" description:"Yahoo!デベロッパーネットワークのアプリケーションID"`
	YahooBaseURL string `long:"yahoo-base-url" env:"YAHOO_BASE_URL" default:"https://shopping.yahooapis.jp" description:"Yahoo!ショッピングAPIのベースURL"`
	YahooResults int    `long:"yahoo-results" env:"YAHOO_RESULTS" default:"0" description:"検索結果の取得件数（0はAPIのデフォルト）"`

	OpenFoodFactsBaseURL string `long:"off-base-url" env:"OFF_BASE_URL" default:"https://world.openfoodfacts.org" description:"Open Food FactsのベースURL"`

	HTTPTimeout time.Duration `long:"http-timeout" env:"HTTP_TIMEOUT" default:"30s" description:"外部APIへのリクエストのタイムアウト"`

	Port           string   `long:"port" env:"PORT" default:"8080" description:"HTTPサーバーのポート"`
	AllowedOrigins []string `long:"allowed-origin" env:"ALLOWED_ORIGINS" env-delim:"," description:"CORSで許可するオリジン"`
}

// Load は envFile（通常は .env）を読み込んだ後、引数と環境変数から設定を組み立てます
// 既に設定されている環境変数は envFile より優先され、ファイルが無くてもエラーにしません
// 戻り値の2つ目は、フラグとして解釈されなかった残りの引数です
func Load(args []string, envFile string, extra ...any) (*Config, []string, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, nil, errors.Wrapf(err, "load %s", envFile)
	}

	return Parse(args, extra...)
}

// Parse は引数と環境変数から設定を組み立てます（.env は読みません）
// extra にはコマンド固有のフラグを持つ構造体のポインタを渡せます
func Parse(args []string, extra ...any) (*Config, []string, error) {
	var cfg Config
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	for _, e := range extra {
		if _, err := parser.AddGroup("Command Options", "", e); err != nil {
			return nil, nil, errors.Wrap(err, "add option group")
		}
	}

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return &cfg, rest, nil
}

// Validate は設定の整合性を確認します
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderYahoo:
		if c.YahooAppID == "" {
			return errors.New("config: yahoo provider requires --yahoo-app-id or YAHOO_APP_ID")
		}
		if c.YahooResults < 0 || c.YahooResults > 100 {
			return errors.Errorf("config: yahoo results must be between 0 and 100, got %d", c.YahooResults)
		}
	case ProviderOpenFoodFacts:
	default:
		return errors.Errorf("config: unknown provider %q", c.Provider)
	}

	if c.HTTPTimeout <= 0 {
		return errors.Errorf("config: http timeout must be positive, got %s", c.HTTPTimeout)
	}

	return nil
}

// IsHelp は err がヘルプ表示の要求かどうかを判定します
func IsHelp(err error) bool {
	var fe *flags.Error
	return errors.As(err, &fe) && fe.Type == flags.ErrHelp
}
