// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// HostEnvVariable overrides the scheme and host given to proxied requests,
// eg "https://autogen-tpl.example.com".
const HostEnvVariable = "AUTOGEN_TPL_HOST"

const defaultServerAddress = "https://autogen-tpl.local"

type RequestAccessor struct {
	stripBasePath string
}

func (r *RequestAccessor) ProxyEventToHTTPRequest(event events.ALBTargetGroupRequest) (*http.Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("Decoding body: %s", err)
		}
		body = decoded
	}

	path := event.Path
	if len(r.stripBasePath) > 1 {
		path = strings.TrimPrefix(path, r.stripBasePath)
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	serverAddress := defaultServerAddress
	if customAddress, ok := os.LookupEnv(HostEnvVariable); ok {
		serverAddress = customAddress
	}

	query := url.Values{}
	for key, value := range event.QueryStringParameters {
		query.Add(key, value)
	}
	for key, values := range event.MultiValueQueryStringParameters {
		query.Del(key)
		for _, value := range values {
			query.Add(key, value)
		}
	}

	target := serverAddress + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	httpRequest, err := http.NewRequest(strings.ToUpper(event.HTTPMethod), target, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("Building request %s %s: %s", event.HTTPMethod, event.Path, err)
	}

	for key, value := range event.Headers {
		httpRequest.Header.Add(key, value)
	}
	for key, values := range event.MultiValueHeaders {
		httpRequest.Header.Del(key)
		for _, value := range values {
			httpRequest.Header.Add(key, value)
		}
	}

	if host := httpRequest.Header.Get("Host"); len(host) > 0 {
		httpRequest.Host = host
	}

	return httpRequest, nil
}
