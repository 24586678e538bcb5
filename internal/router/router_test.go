package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/persons-api/internal/config"
	"github.com/deppfellow/persons-api/internal/handler"
	"github.com/deppfellow/persons-api/internal/model"
	"github.com/deppfellow/persons-api/internal/repository"
	"github.com/deppfellow/persons-api/internal/router"
	"github.com/deppfellow/persons-api/internal/server"
	"github.com/deppfellow/persons-api/internal/service"
	"github.com/deppfellow/persons-api/internal/service/mocks"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const validBody = `{
	"full_name": "Ana Torres",
	"birth_date": "2000-01-01",
	"email": "ana@example.com",
	"country": "Ecuador",
	"national_id": "0102030405"
}`

type envelope struct {
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Errors     []struct {
		Field string `json:"field"`
		Error string `json:"error"`
	} `json:"errors"`
}

type RouterSuite struct {
	suite.Suite

	ctrl   *gomock.Controller
	repo   *mocks.MockPersonRepository
	router *echo.Echo
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	logger := zerolog.Nop()

	s.ctrl = gomock.NewController(s.T())
	s.repo = mocks.NewMockPersonRepository(s.ctrl)
	s.router = s.newRouter(&logger, 1000)
}

func (s *RouterSuite) newRouter(logger *zerolog.Logger, rateLimit float64) *echo.Echo {
	observability := config.DefaultObservabilityConfig()
	observability.HealthChecks.Enabled = false

	srv := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				Port:               "8080",
				CORSAllowedOrigins: []string{"*"},
				RateLimit:          rateLimit,
			},
			Observability: observability,
		},
		Logger: logger,
	}

	services := &service.Services{
		Person: service.NewPersonService(s.repo, nil, logger),
	}
	return router.NewRouter(srv, handler.NewHandlers(srv, services))
}

// apiLines returns the decoded "API" lines written to buf, keeping the raw
// text of each line alongside.
func (s *RouterSuite) apiLines(buf *bytes.Buffer) ([]map[string]any, []string) {
	var decoded []map[string]any
	var raw []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		s.Require().NoError(json.Unmarshal([]byte(line), &entry))
		if entry["message"] == "API" {
			decoded = append(decoded, entry)
			raw = append(raw, line)
		}
	}
	return decoded, raw
}

func (s *RouterSuite) do(method, target, body string) (*httptest.ResponseRecorder, envelope) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env))
		s.Equal(rec.Code, env.StatusCode)
		s.Equal(http.StatusText(rec.Code), env.Message)
	}

	return rec, env
}

func (s *RouterSuite) person() *model.Person {
	payload := model.PersonPayload{
		FullName:   "Ana Torres",
		BirthDate:  "2000-01-01",
		Email:      "ana@example.com",
		Country:    "Ecuador",
		NationalID: "0102030405",
	}
	p, err := payload.ToPerson()
	s.Require().NoError(err)
	p.ID = 1
	return p
}

func (s *RouterSuite) TestListEmpty() {
	s.repo.EXPECT().List(gomock.Any()).Return([]model.Person{}, nil)

	rec, env := s.do(http.MethodGet, "/persons", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, string(env.Data))
}

func (s *RouterSuite) TestRegister() {
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(s.person(), nil)

	rec, env := s.do(http.MethodPost, "/persons/register", validBody)

	s.Equal(http.StatusCreated, rec.Code)
	s.Equal("Created", env.Message)
	s.JSONEq(`{
		"id": 1,
		"full_name": "Ana Torres",
		"birth_date": "2000-01-01",
		"email": "ana@example.com",
		"country": "Ecuador",
		"national_id": "0102030405"
	}`, string(env.Data))
}

func (s *RouterSuite) TestRegisterMissingEachField() {
	for _, field := range model.PersonFields {
		s.Run(field, func() {
			var body map[string]any
			s.Require().NoError(json.Unmarshal([]byte(validBody), &body))
			delete(body, field)
			raw, err := json.Marshal(body)
			s.Require().NoError(err)

			rec, env := s.do(http.MethodPost, "/persons/register", string(raw))

			s.Equal(http.StatusUnprocessableEntity, rec.Code)
			s.Contains(string(env.Data), field)
		})
	}
}

func (s *RouterSuite) TestRegisterRejectsNonJSON() {
	req := httptest.NewRequest(http.MethodPost, "/persons/register", strings.NewReader("full_name=Ana"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestRegisterWithoutBody() {
	rec, _ := s.do(http.MethodPost, "/persons/register", "")

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestRegisterInvalidEmailAndDate() {
	body := strings.NewReplacer(`"ana@example.com"`, `"abc"`, `"2000-01-01"`, `"2000-13-01"`).Replace(validBody)

	rec, env := s.do(http.MethodPost, "/persons/register", body)

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Require().Len(env.Errors, 2)
	s.Equal("birth_date", env.Errors[0].Field)
	s.Equal("email", env.Errors[1].Field)
}

func (s *RouterSuite) TestRegisterDuplicate() {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		TableName:      "persons",
		ConstraintName: "unique_persons_email",
	}
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.Wrap(pgErr, "failed to create person"))

	rec, env := s.do(http.MethodPost, "/persons/register", validBody)

	s.Equal(http.StatusConflict, rec.Code)
	s.JSONEq(`"A Person with this Email already exists"`, string(env.Data))
}

func (s *RouterSuite) TestSearchNotFound() {
	s.repo.EXPECT().FindByNationalID(gomock.Any(), "999").Return(nil, repository.ErrPersonNotFound)

	rec, env := s.do(http.MethodGet, "/persons/search/999", "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("null", string(env.Data))
}

func (s *RouterSuite) TestUpdateUnknown() {
	s.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, repository.ErrPersonNotFound)

	rec, _ := s.do(http.MethodPut, "/persons/update", validBody)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterSuite) TestUpdate() {
	updated := s.person()
	updated.Country = "Peru"

	s.repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *model.Person) (*model.Person, error) {
			s.Equal("0102030405", p.NationalID)
			s.Equal("Peru", p.Country)
			return updated, nil
		})

	body := strings.Replace(validBody, `"Ecuador"`, `"Peru"`, 1)
	rec, env := s.do(http.MethodPut, "/persons/update", body)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(string(env.Data), `"country":"Peru"`)
}

func (s *RouterSuite) TestUpdateWithoutBody() {
	rec, env := s.do(http.MethodPut, "/persons/update", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`"request body must be JSON"`, string(env.Data))
}

func (s *RouterSuite) TestUpdateRejectsNonJSON() {
	for name, contentType := range map[string]string{
		"form":  echo.MIMEApplicationForm,
		"plain": echo.MIMETextPlain,
	} {
		s.Run(name, func() {
			req := httptest.NewRequest(http.MethodPut, "/persons/update", strings.NewReader(validBody))
			req.Header.Set(echo.HeaderContentType, contentType)
			rec := httptest.NewRecorder()

			s.router.ServeHTTP(rec, req)

			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}
}

func (s *RouterSuite) TestUpdateRejectsMalformedJSON() {
	rec, _ := s.do(http.MethodPut, "/persons/update", `{"full_name": `)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestUpdateMissingEachField() {
	for _, field := range model.PersonFields {
		s.Run(field, func() {
			var body map[string]any
			s.Require().NoError(json.Unmarshal([]byte(validBody), &body))
			delete(body, field)
			raw, err := json.Marshal(body)
			s.Require().NoError(err)

			rec, env := s.do(http.MethodPut, "/persons/update", string(raw))

			s.Equal(http.StatusUnprocessableEntity, rec.Code)
			s.Contains(string(env.Data), field)
		})
	}
}

func (s *RouterSuite) TestUpdateInvalidEmailAndDate() {
	body := strings.NewReplacer(`"ana@example.com"`, `"abc"`, `"2000-01-01"`, `"01/01/2000"`).Replace(validBody)

	rec, env := s.do(http.MethodPut, "/persons/update", body)

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Require().Len(env.Errors, 2)
	s.Equal("birth_date", env.Errors[0].Field)
	s.Equal("email", env.Errors[1].Field)
}

func (s *RouterSuite) TestUpdateDuplicateEmail() {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		TableName:      "persons",
		ConstraintName: "unique_persons_email",
	}
	s.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, errors.Wrap(pgErr, "failed to update person"))

	rec, env := s.do(http.MethodPut, "/persons/update", validBody)

	s.Equal(http.StatusConflict, rec.Code)
	s.JSONEq(`"A Person with this Email already exists"`, string(env.Data))
}

func (s *RouterSuite) TestDeleteThenSearch() {
	gomock.InOrder(
		s.repo.EXPECT().Delete(gomock.Any(), "0102030405").Return(s.person(), nil),
		s.repo.EXPECT().FindByNationalID(gomock.Any(), "0102030405").Return(nil, repository.ErrPersonNotFound),
	)

	rec, env := s.do(http.MethodDelete, "/persons/delete/0102030405", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`"person with national_id 0102030405 was deleted"`, string(env.Data))

	rec, _ = s.do(http.MethodGet, "/persons/search/0102030405", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterSuite) TestDeleteNotFound() {
	s.repo.EXPECT().Delete(gomock.Any(), "999").Return(nil, repository.ErrPersonNotFound)

	rec, env := s.do(http.MethodDelete, "/persons/delete/999", "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(string(env.Data), "999")
}

func (s *RouterSuite) TestInternalErrorIsOpaque() {
	s.repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))

	rec, env := s.do(http.MethodGet, "/persons", "")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("null", string(env.Data))
	s.NotContains(rec.Body.String(), "connection refused")
}

func (s *RouterSuite) TestUnknownRoute() {
	rec, _ := s.do(http.MethodGet, "/nope", "")

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterSuite) TestWrongMethod() {
	rec, _ := s.do(http.MethodPost, "/persons", "")

	s.Equal(http.StatusMethodNotAllowed, rec.Code)
}

func (s *RouterSuite) TestRequestIDIsEchoed() {
	s.repo.EXPECT().List(gomock.Any()).Return([]model.Person{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/persons", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	s.Equal("req-123", rec.Header().Get(echo.HeaderXRequestID))
}

func (s *RouterSuite) TestStatus() {
	rec, env := s.do(http.MethodGet, "/status", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(string(env.Data), `"healthy"`)
}

func (s *RouterSuite) TestRateLimitedRequestIsLogged() {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)
	s.router = s.newRouter(&logger, 0.0001)

	s.repo.EXPECT().List(gomock.Any()).Return([]model.Person{}, nil).Times(1)

	rec, _ := s.do(http.MethodGet, "/persons", "")
	s.Equal(http.StatusOK, rec.Code)

	rec, env := s.do(http.MethodGet, "/persons", "")
	s.Equal(http.StatusTooManyRequests, rec.Code)
	s.JSONEq(`"rate limit exceeded, try again later"`, string(env.Data))

	lines, _ := s.apiLines(&buf)
	s.Require().Len(lines, 2)
	s.EqualValues(http.StatusOK, lines[0]["status"])
	s.EqualValues(http.StatusTooManyRequests, lines[1]["status"])
	s.Equal("warn", lines[1]["level"])
	s.Equal("/persons", lines[1]["path"])
	s.Contains(buf.String(), "rate limit exceeded")
}

func (s *RouterSuite) TestAPILineHasNoRepeatedFields() {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)
	s.router = s.newRouter(&logger, 1000)

	s.repo.EXPECT().List(gomock.Any()).Return([]model.Person{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/persons", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	s.router.ServeHTTP(httptest.NewRecorder(), req)

	lines, raw := s.apiLines(&buf)
	s.Require().Len(lines, 1)
	s.Equal("req-123", lines[0]["request_id"])
	s.Equal(http.MethodGet, lines[0]["method"])
	for _, key := range []string{`"request_id"`, `"method"`, `"ip"`, `"path"`} {
		s.Equal(1, strings.Count(raw[0], key), key)
	}
}

func (s *RouterSuite) TestRequestBodyLoggedAtDebug() {
	for name, tc := range map[string]struct {
		level  zerolog.Level
		logged bool
	}{
		"debug": {level: zerolog.DebugLevel, logged: true},
		"info":  {level: zerolog.InfoLevel, logged: false},
	} {
		s.Run(name, func() {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Level(tc.level)
			s.router = s.newRouter(&logger, 1000)

			s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(s.person(), nil)

			rec, _ := s.do(http.MethodPost, "/persons/register", validBody)
			s.Equal(http.StatusCreated, rec.Code)

			lines, _ := s.apiLines(&buf)
			s.Require().Len(lines, 1)

			data, ok := lines[0]["data"]
			s.Equal(tc.logged, ok)
			if tc.logged {
				raw, err := json.Marshal(data)
				s.Require().NoError(err)
				s.JSONEq(validBody, string(raw))
			}
		})
	}
}

func (s *RouterSuite) TestOversizedBodyRejected() {
	body := `{"full_name":"` + strings.Repeat("a", 2<<20) + `"}`

	rec, _ := s.do(http.MethodPost, "/persons/register", body)

	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
}
