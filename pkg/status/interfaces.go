// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import "context"

// PingerInterface is anything the service depends on and can probe.
type PingerInterface interface {
	Ping(ctx context.Context) error
}
