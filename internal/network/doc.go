// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package network reports whether the coffee lobby server is reachable.
//
// A [Monitor] exposes the current [Status] and delivers transitions to
// subscribers. [Prober] derives the status from periodic health checks;
// [Switch] is driven by hand (forced offline mode, tests).
package network
