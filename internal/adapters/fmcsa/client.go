package fmcsa

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

func (v *Validator) newRequest(ctx context.Context, mcNumber string) (*http.Request, error) {
	url := fmt.Sprintf("%s/qc/services/carriers/%s", v.baseURL, mcNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("webKey", v.apiKey)
	req.URL.RawQuery = q.Encode()

	return req, nil
}

func (v *Validator) do(req *http.Request) (*http.Response, error) {
	resp, err := v.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}
