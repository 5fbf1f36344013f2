// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the connectivity prober and the reconciliation engine as a worker
// group next to the terminal UI, and stops them all together.
package client
