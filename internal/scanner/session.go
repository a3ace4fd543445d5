// Package scanner はカメラなどから読み取ったバーコードを受け取り、
// 商品検索を非同期に1回だけ起動するスキャンセッションを提供します。
package scanner

import (
	"context"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// BarcodeHandler はバーコード1件分の検索と表示を行います
// 失敗時の扱い（ログに残して握りつぶす）は実装側の責務です
type BarcodeHandler interface {
	ShowProduct(ctx context.Context, barcode string) bool
}

// Session はスキャン画面1つ分の状態です
// 「既に1件処理した」フラグ以外に共有される可変状態はありません
type Session struct {
	handler BarcodeHandler
	handled atomic.Bool
	wg      sync.WaitGroup
	logger  *log.Logger
}

// Option はSessionの設定を変更します
type Option func(*Session)

// WithLogger はログの出力先を指定します（デフォルトは log.Default()）
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// NewSession は新しいSessionを作成します
func NewSession(handler BarcodeHandler, opts ...Option) *Session {
	s := &Session{
		handler: handler,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Detect は1フレーム分のデコード結果を受け取ります
// 空白だけでない最初の値を採用し、まだ処理していなければバックグラウンドで検索を開始します
// 検索を開始した場合は true を返します
func (s *Session) Detect(ctx context.Context, rawValues []string) bool {
	barcode, ok := firstBarcode(rawValues)
	if !ok {
		return false
	}

	if !s.handled.CompareAndSwap(false, true) {
		return false
	}

	scanID := uuid.NewString()
	s.logger.Printf("[%s] Barcode value: %s", scanID, barcode)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		start := time.Now()
		shown := s.handler.ShowProduct(ctx, barcode)
		s.logger.Printf("[%s] lookup finished in %s (shown=%t)", scanID, time.Since(start).Round(time.Millisecond), shown)
	}()

	return true
}

// Handled は既にスキャンを1件受け付けたかどうかを返します
func (s *Session) Handled() bool {
	return s.handled.Load()
}

// Reset は次のスキャンを受け付けられる状態に戻します（ダイアログを閉じたときなど）
func (s *Session) Reset() {
	s.handled.Store(false)
}

// Wait は実行中の検索がすべて終わるまで待ちます
func (s *Session) Wait() {
	s.wg.Wait()
}

// firstBarcode は空白以外の文字を含む最初の値をそのまま返します
func firstBarcode(rawValues []string) (string, bool) {
	for _, v := range rawValues {
		if strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	return "", false
}
