// Package handler is the HTTP layer, the first entry point after the router.
//
// Handlers receive requests already bound and validated by the generic
// Handle pipeline, call the service layer and return the value placed in the
// response envelope. Errors are left to the global error handler.
package handler
