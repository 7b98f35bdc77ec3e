// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"fmt"
	"net/http"

	"github.com/canonical/client-portal/internal/logging"
)

// TransactionMiddleware runs every write request in one transaction, rolled
// back when the handler answers with a status >= 400.
func TransactionMiddleware(db DBClientInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			err := db.WithTx(r.Context(), func(ctx context.Context) error {
				next.ServeHTTP(rw, r.WithContext(ctx))

				if rw.status >= http.StatusBadRequest {
					return fmt.Errorf("%s %s answered %d", r.Method, r.URL.Path, rw.status)
				}

				return nil
			})

			if err != nil {
				logger.Debugf("transaction rolled back: %v", err)
			}
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
