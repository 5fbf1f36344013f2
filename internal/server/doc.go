// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the coffee lobby HTTP server.
//
// It covers the server lifecycle: startup, signal handling and graceful
// shutdown. Websocket push connections are hijacked from the HTTP server
// and manage their own deadlines.
package server
