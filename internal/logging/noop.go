// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// NewNoopLogger discards everything, security events included.
func NewNoopLogger() *Logger {
	nop := zap.NewNop()

	l := new(Logger)
	l.SugaredLogger = nop.Sugar()
	l.security = &SecurityLogger{l: nop}

	return l
}
