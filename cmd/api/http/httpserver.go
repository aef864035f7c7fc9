package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

var RequestTimeout = 5 * time.Second

const requestIDHeader = "X-Request-ID"

type ServerConfig struct {
	Port           int
	RequestTimeout time.Duration
}

func NewServer(config ServerConfig, h *CostumeHandler) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", ping)
	mux.HandleFunc("/", h.index)
	mux.HandleFunc("/costumes", h.addCostume)
	mux.HandleFunc("/rentals", h.rentals)
	mux.HandleFunc("/api/costumes", h.apiCostumes)
	mux.HandleFunc("/api/costumes/", h.apiCostumeRentals)
	mux.HandleFunc("/api/branches", h.apiBranches)

	timeout := config.RequestTimeout
	if timeout <= 0 {
		timeout = RequestTimeout
	}

	server := http.Server{
		Addr:              fmt.Sprintf(":%d", config.Port),
		Handler:           withRequestID(withTimeout(timeout, mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return &server
}

/* Tests the http server connection.  */
func ping(w http.ResponseWriter, r *http.Request) {
	method := r.Method
	if method == http.MethodGet {
		w.WriteHeader(http.StatusNoContent)
		return
	} else {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
}

func withTimeout(timeout time.Duration, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type requestIDKey struct{}

/* Keeps the caller's X-Request-ID, or generates one, and echoes it on the response. */
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func logRequestError(r *http.Request, err error) {
	log.Printf("[%s] %s %s: %v", requestID(r.Context()), r.Method, r.URL.Path, err)
}
