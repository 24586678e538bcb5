package service

import (
	"github.com/deppfellow/persons-api/internal/repository"
	"github.com/deppfellow/persons-api/internal/server"
)

type Services struct {
	Person *PersonService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	var notifier RegistrationNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Person: NewPersonService(repos.Person, notifier, s.Logger),
	}
}
