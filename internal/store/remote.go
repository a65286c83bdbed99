package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Remote is the cross-device mirror. The stored value travels as a JSON
// string that itself contains JSON (double-encoding), exactly as the hosted
// sheet backend speaks it:
//
//	GET  <endpoint>?action=get&key=<key>   → {"value": <string|null>}
//	POST <endpoint> {"action":"set","key":k,"value":v}   (response ignored)
type Remote interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

type httpRemote struct {
	endpoint string
	client   *http.Client
}

// NewHTTPRemote builds a Remote over the store endpoint. The timeout is the
// only protection a read gets; writes are fire-and-forget at the Client
// level, so a slow endpoint never blocks a caller.
func NewHTTPRemote(endpoint string, timeout time.Duration) Remote {
	return &httpRemote{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type getResponse struct {
	Value *string `json:"value"`
}

type setRequest struct {
	Action string `json:"action"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

func (r *httpRemote) Get(ctx context.Context, key string) (string, bool, error) {
	u := fmt.Sprintf("%s?action=get&key=%s", r.endpoint, url.QueryEscape(key))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", false, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return "", false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("store: unexpected status %d", resp.StatusCode)
	}
	var body getResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", false, err
	}
	if body.Value == nil {
		return "", false, nil
	}
	return *body.Value, true, nil
}

func (r *httpRemote) Set(ctx context.Context, key, value string) error {
	payload, err := json.Marshal(setRequest{Action: "set", Key: key, Value: value})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	// Response body is ignored by contract; drain so the connection is reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("store: unexpected status %d", resp.StatusCode)
	}
	return nil
}
