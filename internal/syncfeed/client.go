package syncfeed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"donatecart/internal/infra"
)

// ChangeSet is the wire shape of one /v1/changes response.
type ChangeSet struct {
	Revision uint64   `json:"revision"`
	Keys     []string `json:"keys"`
}

// Client polls a sync server's change feed and reads and writes keys over
// HTTP. It lets a second process behave like another browser tab sharing
// the same storage.
type Client struct {
	base     string
	http     *http.Client
	interval time.Duration
	log      infra.Logger

	since uint64
}

// NewClient builds a Client for the server at base (e.g. http://localhost:8080).
func NewClient(base string, interval time.Duration, log infra.Logger) *Client {
	return &Client{
		base:     base,
		http:     &http.Client{Timeout: 10 * time.Second},
		interval: interval,
		log:      log,
	}
}

// Run polls the change feed until ctx is cancelled, invoking onChange once
// per changed key. Poll errors are logged and retried on the next tick.
func (c *Client) Run(ctx context.Context, onChange func(key string)) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			keys, err := c.Poll(ctx)
			if err != nil {
				c.log.Warn().Err(err).Msg("syncfeed: poll failed")
				continue
			}
			for _, key := range keys {
				onChange(key)
			}
		}
	}
}

// Poll fetches changes newer than the last observed revision and advances
// the client's cursor.
func (c *Client) Poll(ctx context.Context) ([]string, error) {
	u := c.base + "/v1/changes?since=" + strconv.FormatUint(c.since, 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("syncfeed: build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("syncfeed: poll: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("syncfeed: poll status %d", resp.StatusCode)
	}
	var cs ChangeSet
	if err := json.NewDecoder(resp.Body).Decode(&cs); err != nil {
		return nil, fmt.Errorf("syncfeed: decode changes: %w", err)
	}
	c.since = cs.Revision
	return cs.Keys, nil
}

// RemoteStore adapts the sync server's key API to the storage.Store
// interface so a process can use the shared server as its storage layer.
type RemoteStore struct {
	base string
	http *http.Client
}

// NewRemoteStore builds a RemoteStore for the server at base.
func NewRemoteStore(base string) *RemoteStore {
	return &RemoteStore{base: base, http: &http.Client{Timeout: 10 * time.Second}}
}

func (s *RemoteStore) keyURL(key string) string {
	return s.base + "/v1/keys/" + url.PathEscape(key)
}

// Get fetches the value for key. A 404 reports absence, not an error.
func (s *RemoteStore) Get(key string) ([]byte, bool, error) {
	resp, err := s.http.Get(s.keyURL(key))
	if err != nil {
		return nil, false, fmt.Errorf("syncfeed: get %q: %w", key, err)
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, false, fmt.Errorf("syncfeed: read %q: %w", key, err)
		}
		return data, true, nil
	case http.StatusNotFound:
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("syncfeed: get %q: status %d", key, resp.StatusCode)
	}
}

// Set writes the value for key.
func (s *RemoteStore) Set(key string, value []byte) error {
	req, err := http.NewRequest(http.MethodPut, s.keyURL(key), bytes.NewReader(value))
	if err != nil {
		return fmt.Errorf("syncfeed: build put %q: %w", key, err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("syncfeed: put %q: %w", key, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("syncfeed: put %q: status %d", key, resp.StatusCode)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *RemoteStore) Delete(key string) error {
	req, err := http.NewRequest(http.MethodDelete, s.keyURL(key), nil)
	if err != nil {
		return fmt.Errorf("syncfeed: build delete %q: %w", key, err)
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("syncfeed: delete %q: %w", key, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("syncfeed: delete %q: status %d", key, resp.StatusCode)
	}
	return nil
}
