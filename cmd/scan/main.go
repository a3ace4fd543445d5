// Command scan はバーコードを読み取って商品情報のダイアログを表示します。
//
// バーコードは引数で渡すか、標準入力から1行1フレーム（空白区切りで複数可）で渡します。
//
//	scan --yahoo-app-id=xxxx 4901777018686
//	zbarcam --raw | scan --provider=openfoodfacts
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"jo3qma.com/product_bubble/internal/config"
	"jo3qma.com/product_bubble/internal/infrastructure"
	"jo3qma.com/product_bubble/internal/presenter"
	"jo3qma.com/product_bubble/internal/scanner"
	"jo3qma.com/product_bubble/internal/usecase"
)

// options は scan コマンド固有のフラグです
type options struct {
	Once bool `long:"once" description:"最初の1件を表示したら終了する"`
}

func main() {
	var opts options

	cfg, barcodes, err := config.Load(os.Args[1:], ".env", &opts)
	if err != nil {
		if config.IsHelp(err) {
			fmt.Println(err)
			return
		}
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	repo, err := infrastructure.NewProductRepository(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to build repository: %v", err)
	}

	// 検索結果はメインループに戻してから表示する
	queue := presenter.NewMainQueue(1)
	show := usecase.NewScanUsecase(
		usecase.NewLookupUsecase(repo),
		presenter.OnMain(presenter.NewAlert(os.Stdout), queue.Post),
	)
	session := scanner.NewSession(show)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	frames := make(chan []string)
	go readFrames(ctx, barcodes, os.Stdin, frames)

	run(ctx, frames, session, queue, opts.Once)
}

// run はフレームを1つずつセッションに渡し、検索が終わるたびに結果をメインループで表示します
// once が false の場合は表示のたびにセッションを戻し（ダイアログの [OK]）、次のスキャンを受け付けます
// 表示のためにメインループで実行した処理の数を返します
func run(ctx context.Context, frames <-chan []string, session *scanner.Session, queue *presenter.MainQueue, once bool) int {
	drained := 0
	for {
		select {
		case <-ctx.Done():
			session.Wait()
			return drained + queue.Drain()
		case frame, ok := <-frames:
			if !ok {
				session.Wait()
				return drained + queue.Drain()
			}
			if !session.Detect(ctx, frame) {
				continue
			}

			session.Wait()
			drained += queue.Drain()
			if once {
				return drained
			}
			session.Reset()
		}
	}
}

// readFrames は引数のバーコード、なければ r の各行をフレームとして送ります
func readFrames(ctx context.Context, barcodes []string, r io.Reader, out chan<- []string) {
	defer close(out)

	send := func(frame []string) bool {
		select {
		case out <- frame:
			return true
		case <-ctx.Done():
			return false
		}
	}

	if len(barcodes) > 0 {
		for _, b := range barcodes {
			if !send([]string{b}) {
				return
			}
		}
		return
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if !send(strings.Fields(sc.Text())) {
			return
		}
	}
	if err := sc.Err(); err != nil {
		log.Printf("warning: failed to read frames: %v", err)
	}
}
