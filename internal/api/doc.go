// Package api adapts HTTP requests to the application services. Handlers
// decode and validate input, call a service and write JSON. Every error
// they return is reported by HandleError, which is the only place error
// responses are written.
package api
