package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/apperr"

	"github.com/rs/zerolog"
)

// Client เป็นฐานร่วมของ client ทุก service:
// แปะ bearer token, encode/decode JSON และ normalize ทุกความล้มเหลว
// ให้เป็น apperr ก่อนถึงมือ service layer
type Client struct {
	name string
	base string
	http *http.Client
	log  zerolog.Logger
}

func newClient(name, baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		name: name,
		base: baseURL,
		http: &http.Client{Timeout: timeout},
		log:  log.With().Str("upstream", name).Logger(),
	}
}

// upstreamError รูปแบบ error body ที่ service ต่าง ๆ ตอบกลับมา
type upstreamError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return apperr.Wrap(apperr.Server, "encode request", err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return apperr.Wrap(apperr.Server, "build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return apperr.Wrap(apperr.Network, fmt.Sprintf("%s service unreachable", c.name), err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return c.statusError(res)
	}
	if out == nil {
		io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return apperr.Wrap(apperr.Server, fmt.Sprintf("decode %s response", c.name), err)
	}
	return nil
}

func (c *Client) statusError(res *http.Response) error {
	msg := c.errorMessage(res)
	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return apperr.E(apperr.Unauthorized, msg)
	case res.StatusCode == http.StatusNotFound:
		return apperr.E(apperr.NotFound, msg)
	case res.StatusCode == http.StatusConflict:
		return apperr.E(apperr.Conflict, msg)
	case res.StatusCode == http.StatusBadRequest || res.StatusCode == http.StatusUnprocessableEntity:
		return apperr.E(apperr.Validation, msg)
	default:
		return apperr.E(apperr.Server, msg)
	}
}

func (c *Client) errorMessage(res *http.Response) string {
	var ue upstreamError
	if err := json.NewDecoder(io.LimitReader(res.Body, 4096)).Decode(&ue); err == nil {
		if ue.Error != "" {
			return ue.Error
		}
		if ue.Message != "" {
			return ue.Message
		}
	}
	return fmt.Sprintf("%s service returned %d", c.name, res.StatusCode)
}
