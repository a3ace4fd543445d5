package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jo3qma.com/product_bubble/internal/config"
	"jo3qma.com/product_bubble/internal/handler"
	"jo3qma.com/product_bubble/internal/infrastructure"
	"jo3qma.com/product_bubble/internal/usecase"
)

func main() {
	cfg, _, err := config.Load(os.Args[1:], ".env")
	if err != nil {
		if config.IsHelp(err) {
			fmt.Println(err)
			return
		}
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	// 依存関係の組み立て（依存性注入）
	// 取得元（Yahoo!ショッピング / Open Food Facts）は設定で差し替えます
	repo, err := infrastructure.NewProductRepository(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to build repository: %v", err)
	}

	uc := usecase.NewLookupUsecase(repo)
	h := handler.NewProductHandler(uc)

	addr := fmt.Sprintf(":%s", cfg.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      handler.NewRouter(h, cfg.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// グレースフルシャットダウンの設定
	go func() {
		log.Printf("🚀 Server starting on %s (provider=%s)", addr, cfg.Provider)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed to start: %v", err)
		}
	}()

	// シグナル待機（Ctrl+Cなど）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server exited")
}
