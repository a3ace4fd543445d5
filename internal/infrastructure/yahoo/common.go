package yahoo

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/go-faster/errors"
)

const userAgent = "product-bubble/1.0 (+https://jo3qma.com)"

// apiError はYahoo!デベロッパーネットワークのエラーレスポンスです
type apiError struct {
	Error struct {
		Message string `json:"Message"`
	} `json:"Error"`
}

// fetchJSON は指定されたURLからJSONを取得して out にデコードします
// 共通のヘッダー設定やエラーハンドリングを行います
func fetchJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	res, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to fetch")
	}
	defer func() {
		if closeErr := res.Body.Close(); closeErr != nil {
			log.Printf("warning: failed to close response body: %v", closeErr)
		}
	}()

	if res.StatusCode != http.StatusOK {
		return statusError(res)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode JSON")
	}

	return nil
}

// statusError は200以外のレスポンスをエラーに変換します
// エラー本文にメッセージがあればそれを含めます
func statusError(res *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(res.Body, 64<<10))

	var apiErr apiError
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
		return errors.Errorf("unexpected status %d: %s", res.StatusCode, apiErr.Error.Message)
	}
	return errors.Errorf("unexpected status %d", res.StatusCode)
}
