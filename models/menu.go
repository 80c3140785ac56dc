// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MenuVisibility tells the page whether the navigation menu is shown for a
// role.
type MenuVisibility struct {
	Role    string `json:"role"`
	Visible bool   `json:"visible"`
}
