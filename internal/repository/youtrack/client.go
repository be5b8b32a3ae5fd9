package youtrack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"issue-stats/internal/entities"
)

const maxErrorBody = 64 << 10

var schemeRe = regexp.MustCompile(`(?i)^https?://`)

// NormalizeBaseURL turns a bare host or a full URL into the REST API root,
// e.g. "acme.youtrack.cloud" -> "https://acme.youtrack.cloud/api".
func NormalizeBaseURL(hostOrURL string) (string, error) {
	normalized := strings.TrimSpace(hostOrURL)
	if normalized == "" {
		return "", fmt.Errorf("%w: youtrack host or base URL must be provided", entities.ErrInvalidArgument)
	}
	if !schemeRe.MatchString(normalized) {
		normalized = "https://" + normalized
	}
	normalized = strings.TrimSuffix(normalized, "/")
	if !strings.HasSuffix(normalized, "/api") {
		normalized += "/api"
	}
	return normalized, nil
}

// RequestOptions customises a single API call.
type RequestOptions struct {
	Method       string
	Headers      map[string]string
	Body         io.Reader
	SearchParams map[string]string
}

// Request performs an API call and decodes the JSON answer into out.
// A 204 answer leaves out untouched. Non-2xx answers return *entities.UpstreamError.
func (y *YouTrack) Request(ctx context.Context, endpoint string, opts RequestOptions, out any) error {
	if y.httpClient == nil {
		return errors.New("youtrack backend is not started")
	}

	target, err := y.buildURL(endpoint)
	if err != nil {
		return err
	}
	if q := encodeSearchParams(opts.SearchParams); q != "" {
		target.RawQuery = q
	}

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), opts.Body)
	if err != nil {
		return fmt.Errorf("build request %s: %w", target.Path, err)
	}
	req.Header.Set("Authorization", "Bearer "+y.cfg.Token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := y.httpClient.Do(req)
	if err != nil {
		y.metrics.ObserveUpstream(target.Path, 0, time.Since(start))
		return fmt.Errorf("youtrack request %s: %w", target.Path, err)
	}
	defer resp.Body.Close()
	y.metrics.ObserveUpstream(target.Path, resp.StatusCode, time.Since(start))
	y.log.Debugw("youtrack request",
		"method", method,
		"path", target.Path,
		"status", resp.StatusCode,
		"duration_ms", float64(time.Since(start).Microseconds())/1000.0,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &entities.UpstreamError{
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
			Path:       target.Path,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode %s: %w", target.Path, err)
	}
	return nil
}

func (y *YouTrack) buildURL(endpoint string) (*url.URL, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("%w: endpoint is required", entities.ErrInvalidArgument)
	}
	raw := endpoint
	if !schemeRe.MatchString(endpoint) {
		if !strings.HasPrefix(endpoint, "/") {
			endpoint = "/" + endpoint
		}
		raw = y.baseURL + endpoint
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: parse url %q: %v", entities.ErrInvalidArgument, raw, err)
	}
	return u, nil
}

// encodeSearchParams drops empty values. Keys come out sorted.
func encodeSearchParams(params map[string]string) string {
	values := url.Values{}
	for k, v := range params {
		if v == "" {
			continue
		}
		values.Set(k, v)
	}
	return values.Encode()
}

// statusText strips the numeric prefix net/http puts into resp.Status.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// fetchPage decodes one listing page. Anything other than a JSON array
// (null, 204, an object) is treated as an empty page.
func fetchPage[T any](ctx context.Context, y *YouTrack, endpoint string, params map[string]string) ([]T, error) {
	var raw json.RawMessage
	if err := y.Request(ctx, endpoint, RequestOptions{SearchParams: params}, &raw); err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		if len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
			y.log.Warnw("unexpected page shape, treating as end of data", "endpoint", endpoint)
		}
		return nil, nil
	}

	var batch []T
	if err := json.Unmarshal(raw, &batch); err != nil {
		return nil, fmt.Errorf("decode %s page: %w", endpoint, err)
	}
	return batch, nil
}

// fetchAll pages through a listing endpoint with $top/$skip until a page
// shorter than the page size arrives.
func fetchAll[T any](ctx context.Context, y *YouTrack, endpoint string, params map[string]string) ([]T, error) {
	var all []T
	skip := 0
	for {
		pageParams := make(map[string]string, len(params)+2)
		for k, v := range params {
			pageParams[k] = v
		}
		pageParams["$top"] = strconv.Itoa(y.pageSize)
		pageParams["$skip"] = strconv.Itoa(skip)

		batch, err := fetchPage[T](ctx, y, endpoint, pageParams)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}
		all = append(all, batch...)
		if len(batch) < y.pageSize {
			break
		}
		skip += len(batch)
	}
	return all, nil
}
