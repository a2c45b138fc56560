// Package handlers implements the sync server's HTTP API: a key/value
// surface over the shared storage layer plus the change feed pages poll to
// stay in sync, standing in for the browser's cross-tab storage events.
package handlers

import (
	"encoding/json"
	"net/http"

	"donatecart/internal/infra"
	"donatecart/internal/storage"
	"donatecart/internal/syncfeed"
)

// App is the handler container injected into the router.
type App struct {
	KV   storage.Store
	Feed *syncfeed.Log
	Log  infra.Logger
}

// NewApp builds an App over kv and feed.
func NewApp(kv storage.Store, feed *syncfeed.Log, log infra.Logger) *App {
	return &App{KV: kv, Feed: feed, Log: log}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
