// Package server holds the HTTP server configuration used by the serve command.
//
// The Config struct defines the listen port and the optional API key that
// protects the drift endpoints.
package server
