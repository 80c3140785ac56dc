// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Query is a read over one named resource. It is built with [Client.From]
// and is not safe for reuse across goroutines.
type Query struct {
	client   *Client
	resource string
	columns  []string
	orders   []string
	limit    int
}

// From starts a read of resource.
func (c *Client) From(resource string) *Query {
	return &Query{client: c, resource: resource}
}

// Select sets the returned columns. No columns means all ("*").
func (q *Query) Select(columns ...string) *Query {
	q.columns = append(q.columns, columns...)
	return q
}

// Order appends an ordering term.
func (q *Query) Order(column string, ascending bool) *Query {
	dir := "desc"
	if ascending {
		dir = "asc"
	}
	q.orders = append(q.orders, column+"."+dir)
	return q
}

// Limit caps the number of returned rows. Zero or negative means no limit.
func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

// Params returns the query string parameters in PostgREST syntax.
func (q *Query) Params() map[string]string {
	params := map[string]string{"select": "*"}
	if len(q.columns) > 0 {
		params["select"] = strings.Join(q.columns, ",")
	}
	if len(q.orders) > 0 {
		params["order"] = strings.Join(q.orders, ",")
	}
	if q.limit > 0 {
		params["limit"] = strconv.Itoa(q.limit)
	}
	return params
}

// Execute runs the read and decodes the JSON array into dest. dest may be
// nil when only success matters.
func (q *Query) Execute(ctx context.Context, dest any) error {
	resp, err := q.client.request(ctx).
		SetQueryParams(q.Params()).
		Get(restPath + q.resource)
	if err != nil {
		return fmt.Errorf("read %s: %w", q.resource, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("read %s: %w", q.resource, err)
	}

	if dest == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), dest); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrDecode, q.resource, err)
	}
	return nil
}
