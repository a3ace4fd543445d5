package presenter

import "jo3qma.com/product_bubble/internal/domain/model"

// MainQueue はバックグラウンドの検索結果をメインの処理に戻すためのキューです
// バックグラウンド側が Post し、メインループが Drain で実行します
type MainQueue struct {
	ch chan func()
}

// NewMainQueue は指定サイズのバッファを持つMainQueueを作成します
func NewMainQueue(size int) *MainQueue {
	return &MainQueue{ch: make(chan func(), size)}
}

// Post は f をメインの処理で実行するよう予約します
// バッファが一杯の場合は空くまでブロックします
func (q *MainQueue) Post(f func()) {
	q.ch <- f
}

// Drain は予約済みの処理をすべて実行し、実行した数を返します
func (q *MainQueue) Drain() int {
	n := 0
	for {
		select {
		case f := <-q.ch:
			f()
			n++
		default:
			return n
		}
	}
}

// ProductPresenter は商品を表示します
type ProductPresenter interface {
	Present(p *model.Product)
}

type mainPresenter struct {
	next ProductPresenter
	post func(func())
}

// OnMain は Present の呼び出しを post 経由でメインの処理に移す Presenter を返します
func OnMain(next ProductPresenter, post func(func())) ProductPresenter {
	return &mainPresenter{next: next, post: post}
}

func (m *mainPresenter) Present(p *model.Product) {
	m.post(func() { m.next.Present(p) })
}
