// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultCategory is assigned to products that carry neither a "category"
// nor a "categoria" value.
const DefaultCategory = "general"

// Product is a single row of the "products" resource.
//
// The catalog has historically stored the category under two column names;
// Categoria is the legacy one. After normalization Category is always set.
type Product struct {
	ID          RowID     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       Amount    `json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
	Category    string    `json:"category"`
	Categoria   string    `json:"categoria,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Normalize returns a copy of p with Category filled from Category,
// then Categoria, then [DefaultCategory].
func (p Product) Normalize() Product {
	switch {
	case p.Category != "":
	case p.Categoria != "":
		p.Category = p.Categoria
	default:
		p.Category = DefaultCategory
	}
	return p
}
