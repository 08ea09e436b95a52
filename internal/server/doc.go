// Package server runs the users registry's HTTP API and gRPC health service
// and shuts them down on SIGTERM, SIGINT or SIGQUIT.
package server
