package main

import (
	"context"
	"net/http"
	"time"

	"bbws/internal/browse"
	"bbws/internal/entity"
	"bbws/internal/httpx"
	"bbws/internal/relationship"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type services struct {
	entities      *entity.Service
	relationships *relationship.Service
	browse        *browse.Service
}

// newRouter registers the read-only routes for every entity kind.
func newRouter(svc services, db pinger) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			httpx.JSONError(w, r, http.StatusServiceUnavailable, "NOT_READY", "Database not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	for _, kind := range entity.Kinds() {
		base := "/" + kind.Key()
		entities := entity.NewHTTPHandler(svc.entities, kind)
		relationships := relationship.NewHTTPHandler(svc.relationships, kind)
		browsing := browse.NewHTTPHandler(svc.browse, kind)

		mux.HandleFunc("GET "+base, browsing.Browse)
		mux.HandleFunc("GET "+base+"/{bbid}", entities.Get)
		mux.HandleFunc("GET "+base+"/{bbid}/aliases", entities.Aliases)
		mux.HandleFunc("GET "+base+"/{bbid}/identifiers", entities.Identifiers)
		mux.HandleFunc("GET "+base+"/{bbid}/relationships", relationships.List)
	}

	return mux
}
