package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"vacstats/internal/stats"
	"vacstats/internal/types"

	"github.com/klauspost/compress/gzip"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	Fetcher *stats.Fetcher
	Updater *stats.Updater
}

func NewHandler(f *stats.Fetcher, u *stats.Updater) *Handler {
	return &Handler{Fetcher: f, Updater: u}
}

func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/stats", h.handleGetStats)
	mux.HandleFunc("/stats/update", h.handleUpdate)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// handleGetStats returns the stored document bytes verbatim. Only the
// status codes are contract-bearing: 200 with the JSON body, 404 when no
// document exists yet, 500 otherwise.
func (h *Handler) handleGetStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	body, err := h.Fetcher.Fetch(r.Context())
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			http.Error(w, fmt.Sprintf("%s not found", h.Fetcher.Key), http.StatusNotFound)
			return
		}
		log.WithError(err).Error("failed to fetch stats document")
		http.Error(w, "failed to fetch stats document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if acceptsGzip(r) {
		w.Header().Set("Content-Encoding", "gzip")
		w.WriteHeader(http.StatusOK)
		gz := gzip.NewWriter(w)
		_, _ = gz.Write(body)
		_ = gz.Close()
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// handleUpdate runs the write path. Method-agnostic: the scheduler that
// triggers it may use GET or POST.
func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	count, err := h.Updater.Update(r.Context())
	if err != nil {
		log.WithError(err).Error("stats update failed")
		msg := "failed to save stats"
		switch {
		case errors.Is(err, types.ErrUpstream):
			msg = "failed to query the vacancies api"
		case errors.Is(err, types.ErrCorruptDocument):
			msg = "stored stats document is corrupt"
		}
		http.Error(w, msg, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "stats saved, %d vacancies today\n", count)
}

func acceptsGzip(r *http.Request) bool {
	for _, enc := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		if strings.TrimSpace(strings.SplitN(enc, ";", 2)[0]) == "gzip" {
			return true
		}
	}
	return false
}
