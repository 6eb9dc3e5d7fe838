// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files_test

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/files"
	"github.com/stretchr/testify/require"
)

const templateURL = "https://example.com/templates/vm.jinja.soy"

func TestHTTPSourceStatusCodes(t *testing.T) {
	cases := []struct {
		code   int
		status string
		err    string
	}{
		{code: http.StatusOK},
		{code: http.StatusIMUsed},
		{code: http.StatusNotFound, status: "404 Not Found",
			err: "Requesting URL '" + templateURL + "': 404 Not Found"},
		{code: http.StatusMovedPermanently, status: "301 Moved Permanently",
			err: "Requesting URL '" + templateURL + "': 301 Moved Permanently"},
	}

	for _, tc := range cases {
		src := files.NewHTTPSource(templateURL)
		src.Client = NewTestClient(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, templateURL, req.URL.String())
			return &http.Response{
				StatusCode: tc.code,
				Status:     tc.status,
				Body:       io.NopCloser(bytes.NewBufferString("{namespace vm}")),
				Header:     make(http.Header),
			}, nil
		})

		body, err := src.Bytes()
		if tc.err != "" {
			require.EqualError(t, err, tc.err)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, "{namespace vm}", string(body))
	}
}

func TestHTTPSourceTransportError(t *testing.T) {
	src := files.NewHTTPSource(templateURL)
	src.Client = NewTestClient(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, err := src.Bytes()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Requesting URL '"+templateURL+"'")
	require.Contains(t, err.Error(), "connection refused")
}

func TestHTTPSourceRelativePath(t *testing.T) {
	src := files.NewHTTPSource(templateURL)

	relPath, err := src.RelativePath()
	require.NoError(t, err)
	require.Equal(t, "vm.jinja.soy", relPath)
	require.Equal(t, "HTTP URL '"+templateURL+"'", src.Description())
}

func TestCachedSourceReadsOnce(t *testing.T) {
	calls := 0
	src := files.NewHTTPSource(templateURL)
	src.Client = NewTestClient(func(*http.Request) (*http.Response, error) {
		calls++
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString("x")),
			Header:     make(http.Header),
		}, nil
	})

	cached := files.NewCachedSource(src)
	for i := 0; i < 3; i++ {
		body, err := cached.Bytes()
		require.NoError(t, err)
		require.Equal(t, "x", string(body))
	}
	require.Equal(t, 1, calls)
}

// NewTestClient returns *http.Client with Transport replaced to avoid making real calls
func NewTestClient(fn RoundTripFunc) *http.Client {
	return &http.Client{Transport: fn}
}

type RoundTripFunc func(req *http.Request) (*http.Response, error)

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
