// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

var (
	client             = http.DefaultClient
	ErrHTTPStatusNotOK = errors.New("non-200 HTTP status code")
)

func MakeGetRequest(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return body, fmt.Errorf("%w: %d", ErrHTTPStatusNotOK, resp.StatusCode)
	}
	return body, nil
}

func ValidateURLFormat(input string) error {
	_, err := url.ParseRequestURI(input)
	return err
}
