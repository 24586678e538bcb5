// Package errs defines the error type every handler returns.
//
// An *HTTPError knows its status, a machine code for logs and the message
// rendered into the response envelope. Constructors exist per status.
package errs
