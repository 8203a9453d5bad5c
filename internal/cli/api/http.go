package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// PostJSON sends a JSON POST request. If token is non-empty, it is passed as
// a bearer token. The context carries the caller's deadline; the request is
// not aborted retroactively once the deadline fires — the late response is
// simply discarded by the caller.
func PostJSON(ctx context.Context, url string, payload any, token string) (*http.Response, []byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, body, nil
}
