// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

type requestKey struct{}

type requestInfo struct {
	id         string
	remoteAddr string
}

// ContextWithRequest stores the request identity so security events emitted
// deeper in the stack can be correlated with the HTTP request.
func ContextWithRequest(ctx context.Context, requestID, remoteAddr string) context.Context {
	return context.WithValue(ctx, requestKey{}, requestInfo{id: requestID, remoteAddr: remoteAddr})
}

// RequestOptions returns the security event options for the request carried
// by ctx, if any.
func RequestOptions(ctx context.Context) []Option {
	info, ok := ctx.Value(requestKey{}).(requestInfo)
	if !ok {
		return nil
	}

	return []Option{WithRequest(info.id, info.remoteAddr)}
}

// RequestMiddleware must run after chi's RequestID middleware.
func RequestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := ContextWithRequest(r.Context(), middleware.GetReqID(r.Context()), r.RemoteAddr)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
