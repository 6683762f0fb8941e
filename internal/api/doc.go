// Package api handles incoming HTTP requests, request validation and response
// formatting. It acts as an adapter between external clients and the task
// services, translating HTTP concerns to service calls and service errors to
// the uniform {error, detail, status_code} envelope.
package api
