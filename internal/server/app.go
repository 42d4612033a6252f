package server

import (
	"encoding/json"
	"log"
	"net/http"

	"WireCrew/internal/game"
)

// Run wires the HTTP surface and blocks serving it.
func Run(cfg Config, store Store) error {
	hub := NewHub(cfg, store)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, w, r)
	})
	mux.HandleFunc("/missions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if err := json.NewEncoder(w).Encode(game.Catalog()); err != nil {
			log.Printf("missions: encode: %v", err)
		}
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	log.Printf("listening on %s", cfg.Addr)
	return http.ListenAndServe(cfg.Addr, mux)
}
