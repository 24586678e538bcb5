// Package model holds the domain entities and the request payloads
// accepted by the HTTP layer.
package model
