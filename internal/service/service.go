// Package service holds the business rules between handlers and storage.
//
// Services receive validated requests, call the repository and translate
// expected absences into HTTP errors. Side effects that must not fail a
// request, like queuing the welcome email, are handled here too.
package service
