// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
)

// ProxyResponseWriter buffers a handler's response for an ALB target group.
type ProxyResponseWriter struct {
	headers http.Header
	body    bytes.Buffer
	status  int
}

var _ http.ResponseWriter = &ProxyResponseWriter{}

func NewProxyResponseWriter() *ProxyResponseWriter {
	return &ProxyResponseWriter{headers: make(http.Header)}
}

func (r *ProxyResponseWriter) Header() http.Header { return r.headers }

func (r *ProxyResponseWriter) Write(data []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.body.Write(data)
}

func (r *ProxyResponseWriter) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
}

// ProxyResponse base64 encodes bodies that are not valid UTF-8.
func (r *ProxyResponseWriter) ProxyResponse() events.ALBTargetGroupResponse {
	status := r.status
	if status == 0 {
		status = http.StatusOK
	}

	resp := events.ALBTargetGroupResponse{
		StatusCode:        status,
		StatusDescription: fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Headers:           map[string]string{},
		MultiValueHeaders: map[string][]string{},
	}

	for key, values := range r.headers {
		resp.Headers[key] = strings.Join(values, ",")
		resp.MultiValueHeaders[key] = values
	}

	if utf8.Valid(r.body.Bytes()) {
		resp.Body = r.body.String()
	} else {
		resp.Body = base64.StdEncoding.EncodeToString(r.body.Bytes())
		resp.IsBase64Encoded = true
	}

	return resp
}
