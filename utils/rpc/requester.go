// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/cspr-tools/cctlnet/utils/logging"

	rpc "github.com/gorilla/rpc/v2/json2"
)

var (
	_ EndpointRequester = (*jsonRPCRequester)(nil)

	// ErrRequestFailed is returned when the request could not be delivered or
	// no response was read.
	ErrRequestFailed = errors.New("request failed")
	// ErrHTTPStatus is returned when the server replied with a non 2xx status.
	ErrHTTPStatus = errors.New("unexpected HTTP status")
)

// IsTransportError reports whether [err] was caused by the transport rather
// than by the server's answer to the call.
func IsTransportError(err error) bool {
	return errors.Is(err, ErrRequestFailed) || errors.Is(err, ErrHTTPStatus)
}

type EndpointRequester interface {
	SendRequest(ctx context.Context, method string, params interface{}, reply interface{}) error
}

type jsonRPCRequester struct {
	uri    string
	client *http.Client
	log    logging.Logger
}

// NewEndpointRequester returns a requester that POSTs JSON-RPC 2.0 calls to
// [uri]. Request and response bodies are logged at verbo.
func NewEndpointRequester(uri string, log logging.Logger) EndpointRequester {
	return &jsonRPCRequester{
		uri:    uri,
		client: http.DefaultClient,
		log:    log,
	}
}

// CleanlyCloseBody avoids sending unnecessary RST_STREAM and PING frames by
// ensuring the whole body is read before being closed.
func CleanlyCloseBody(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}

func (r *jsonRPCRequester) SendRequest(
	ctx context.Context,
	method string,
	params interface{},
	reply interface{},
) error {
	requestBodyBytes, err := rpc.EncodeClientRequest(method, params)
	if err != nil {
		return fmt.Errorf("problem marshaling request with method %q: %w", method, err)
	}
	r.log.Verbo("sending JSON-RPC request",
		zap.String("uri", stripPassword(r.uri)),
		zap.String("method", method),
		zap.ByteString("body", requestBodyBytes),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.uri, bytes.NewReader(requestBodyBytes))
	if err != nil {
		return fmt.Errorf("problem while creating JSON RPC POST request to %s: %w", stripPassword(r.uri), err)
	}
	req.Header.Set("Content-Type", "application/json")

	//nolint:bodyclose // body is closed via CleanlyCloseBody
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRequestFailed, method, err)
	}
	defer CleanlyCloseBody(resp.Body)

	// Return an error for any non successful status code
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s: received status code %d", ErrHTTPStatus, method, resp.StatusCode)
	}

	responseBodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s: reading response: %w", ErrRequestFailed, method, err)
	}
	r.log.Verbo("received JSON-RPC response",
		zap.String("method", method),
		zap.ByteString("body", responseBodyBytes),
	)

	if err := rpc.DecodeClientResponse(bytes.NewReader(responseBodyBytes), reply); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}
