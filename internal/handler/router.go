package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter はHTTPサーバーのルーティングを組み立てます
// allowedOrigins が空の場合はCORSを設定しません
func NewRouter(h *ProductHandler, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(logging)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := fmt.Fprint(w, "ok"); err != nil {
			log.Printf("warning: failed to write healthz: %v", err)
		}
	}).Methods(http.MethodGet)
	r.HandleFunc("/products/{barcode}", h.ServeDialog).Methods(http.MethodGet)

	path, svc := NewProductServiceHandler(h)
	r.PathPrefix(path).Handler(svc)

	if len(allowedOrigins) == 0 {
		return r
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{
			"Content-Type",
			"Connect-Protocol-Version",
			"Connect-Timeout-Ms",
		},
		ExposedHeaders: []string{"Grpc-Status", "Grpc-Message"},
		MaxAge:         7200,
	})
	return c.Handler(r)
}

// logging はリクエストごとにメソッド、パス、所要時間をログに出します
func logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
	})
}
