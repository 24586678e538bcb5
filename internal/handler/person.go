package handler

import (
	"github.com/deppfellow/persons-api/internal/model"
	"github.com/deppfellow/persons-api/internal/server"
	"github.com/deppfellow/persons-api/internal/service"
	"github.com/labstack/echo/v4"
)

// PersonHandler serves the /persons routes.
type PersonHandler struct {
	Handler
	personService *service.PersonService
}

func NewPersonHandler(s *server.Server, personService *service.PersonService) *PersonHandler {
	return &PersonHandler{
		Handler:       NewHandler(s),
		personService: personService,
	}
}

// List handles GET /persons.
func (h *PersonHandler) List(c echo.Context, _ *model.ListPersonsRequest) ([]model.Person, error) {
	return h.personService.List(c.Request().Context())
}

// Search handles GET /persons/search/:national_id.
func (h *PersonHandler) Search(c echo.Context, req *model.SearchPersonRequest) (*model.Person, error) {
	return h.personService.Search(c.Request().Context(), req.NationalID)
}

// Register handles POST /persons/register.
func (h *PersonHandler) Register(c echo.Context, req *model.RegisterPersonRequest) (*model.Person, error) {
	return h.personService.Register(c.Request().Context(), &req.PersonPayload)
}

// Update handles PUT /persons/update.
func (h *PersonHandler) Update(c echo.Context, req *model.UpdatePersonRequest) (*model.Person, error) {
	return h.personService.Update(c.Request().Context(), &req.PersonPayload)
}

// Delete handles DELETE /persons/delete/:national_id.
func (h *PersonHandler) Delete(c echo.Context, req *model.DeletePersonRequest) (string, error) {
	return h.personService.Delete(c.Request().Context(), req.NationalID)
}
