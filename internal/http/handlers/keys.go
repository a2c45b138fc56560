package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"donatecart/internal/syncfeed"
)

// maxValueBytes bounds one stored value, mirroring the few-megabyte budget
// browsers give local storage.
const maxValueBytes = 1 << 20

// KeyGet returns the raw value stored under the named key.
func (a *App) KeyGet(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	value, ok, err := a.KV.Get(key)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_key", err.Error())
		return
	}
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "no value for key")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(value)
}

// KeyPut stores the request body under the named key and bumps the feed.
func (a *App) KeyPut(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	value, err := io.ReadAll(io.LimitReader(r.Body, maxValueBytes+1))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "unable to read body")
		return
	}
	if len(value) > maxValueBytes {
		a.error(w, http.StatusRequestEntityTooLarge, "too_large", "value exceeds storage quota")
		return
	}
	if err := a.KV.Set(key, value); err != nil {
		a.error(w, http.StatusBadRequest, "bad_key", err.Error())
		return
	}
	rev := a.Feed.Bump(key)
	a.Log.Debug().Str("key", key).Uint64("revision", rev).Msg("key stored")
	a.json(w, http.StatusOK, map[string]any{"revision": rev})
}

// KeyDelete removes the named key and bumps the feed so observers notice
// explicit clears.
func (a *App) KeyDelete(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if err := a.KV.Delete(key); err != nil {
		a.error(w, http.StatusBadRequest, "bad_key", err.Error())
		return
	}
	rev := a.Feed.Bump(key)
	a.json(w, http.StatusOK, map[string]any{"revision": rev})
}

// Changes reports keys changed since the revision the caller last saw.
func (a *App) Changes(w http.ResponseWriter, r *http.Request) {
	var since uint64
	if raw := r.URL.Query().Get("since"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "since must be a non-negative integer")
			return
		}
		since = v
	}
	rev, keys := a.Feed.Since(since)
	if keys == nil {
		keys = []string{}
	}
	a.json(w, http.StatusOK, syncfeed.ChangeSet{Revision: rev, Keys: keys})
}
