// Package http implements the HTTP transport layer of the users registry.
//
// It exposes route wiring, request handlers and middleware for the REST API.
// Request tracing, access logging, response compression and bearer
// authentication are handled here before requests are delegated to the
// service layer.
package http
