// Package http contains the HTTP handlers for the analytics pipeline. The
// handlers are a thin boundary: they decode requests, cap upload sizes,
// delegate to the services layer, and render results or RFC 7807 problems.
package http
