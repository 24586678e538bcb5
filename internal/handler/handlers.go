package handler

import (
	"github.com/deppfellow/persons-api/internal/server"
	"github.com/deppfellow/persons-api/internal/service"
)

// Handlers groups every HTTP handler so the router receives a single value.
type Handlers struct {
	Person  *PersonHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Person:  NewPersonHandler(s, services.Person),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
