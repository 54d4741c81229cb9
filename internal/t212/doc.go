// Package t212 provides the Trading212 REST API client.
//
// One endpoint is used: the equity portfolio endpoint returning the
// currently open positions. Authentication is a static API key sent as
// the raw Authorization header value (no Bearer scheme).
//
// A failed call is never retried; the caller aborts the run instead.
package t212
