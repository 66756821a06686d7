// Package http implements the HTTP handlers of the web surface. The
// handlers stay thin: request parsing and response formatting live here,
// everything else is delegated to the pipeline service.
package http
