// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Connection is the backend URL and public anon key needed to reach the
// catalog backend. It is resolved once and never mutated.
type Connection struct {
	URL     string `json:"supabaseUrl"`
	AnonKey string `json:"supabaseAnonKey"`
}
