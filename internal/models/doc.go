// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package models defines the JSON shapes of the HTTP API.
//
// Every endpoint answers with an APIResponse envelope. Payload types here
// wrap engine results with the request echo a client needs to render them.
package models
