// Package api implements the HTTP handlers for the census-api service:
// the 3x3 matrix statistics calculator and the demographic data analyzer.
// Handlers decode and validate requests, delegate to the service layer,
// and translate domain errors into JSON error responses.
package api
