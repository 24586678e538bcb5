package router

import (
	"net/http"

	"github.com/deppfellow/persons-api/internal/handler"
	"github.com/deppfellow/persons-api/internal/model"
	"github.com/labstack/echo/v4"
)

func registerPersonRoutes(r *echo.Echo, h *handler.Handlers) {
	p := h.Person
	persons := r.Group("/persons")

	persons.GET("", handler.Handle(p.Handler, p.List, http.StatusOK, newRequest[model.ListPersonsRequest]))
	persons.GET("/search/:national_id", handler.Handle(p.Handler, p.Search, http.StatusOK, newRequest[model.SearchPersonRequest]))
	persons.POST("/register", handler.Handle(p.Handler, p.Register, http.StatusCreated, newRequest[model.RegisterPersonRequest]))
	persons.PUT("/update", handler.Handle(p.Handler, p.Update, http.StatusOK, newRequest[model.UpdatePersonRequest]))
	persons.DELETE("/delete/:national_id", handler.Handle(p.Handler, p.Delete, http.StatusOK, newRequest[model.DeletePersonRequest]))
}

func newRequest[T any]() *T {
	return new(T)
}
