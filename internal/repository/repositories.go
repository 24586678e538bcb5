package repository

import (
	"github.com/deppfellow/persons-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Person *PersonRepository
}

// NewRepositories constructs the repository container on top of the
// server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Person: NewPersonRepository(s.DB.Pool),
	}
}
