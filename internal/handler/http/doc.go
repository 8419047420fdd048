// Package http implements the HTTP transport layer of the blog API.
//
// It wires chi routes to the service layer and owns the cross-cutting
// request concerns: trace ids, access logging, metrics, response
// compression and identification of the caller from its bearer token.
// Identification never rejects a request; services decide whether an
// anonymous caller is allowed.
package http
