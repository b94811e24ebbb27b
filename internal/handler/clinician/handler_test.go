package clinician

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/totallife/clinical-api/internal/handler"
	"github.com/totallife/clinical-api/internal/middleware"
	"github.com/totallife/clinical-api/internal/model"
	"github.com/totallife/clinical-api/internal/npi"
	"github.com/totallife/clinical-api/internal/repository"
	"github.com/totallife/clinical-api/internal/service/clinician"
)

var _ clinician.Service = (*mockService)(nil)

type mockService struct {
	ValidateFunc func(ctx context.Context, c *model.Clinician) ([]string, error)
	CreateFunc   func(ctx context.Context, c *model.Clinician) (*model.Clinician, error)
	GetFunc      func(ctx context.Context, id string) (*model.Clinician, error)
	ListFunc     func(ctx context.Context) ([]*model.Clinician, error)
	UpdateFunc   func(ctx context.Context, id string, c *model.Clinician) (*model.Clinician, error)
	DeleteFunc   func(ctx context.Context, id string) error

	CreateCalls int
}

func (m *mockService) Validate(ctx context.Context, c *model.Clinician) ([]string, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, c)
	}
	return nil, nil
}

func (m *mockService) Create(ctx context.Context, c *model.Clinician) (*model.Clinician, error) {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	out := *c
	out.ID = "c-1"
	return &out, nil
}

func (m *mockService) Get(ctx context.Context, id string) (*model.Clinician, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockService) List(ctx context.Context) ([]*model.Clinician, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*model.Clinician{}, nil
}

func (m *mockService) Update(ctx context.Context, id string, c *model.Clinician) (*model.Clinician, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, c)
	}
	out := *c
	out.ID = id
	return &out, nil
}

func (m *mockService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func newRouter(svc clinician.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	NewHandler(svc).RegisterRoutes(r)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validationErrors(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var body handler.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Errors
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

const janeBody = `{"first_name":"JANE","last_name":"DOE","npi_number":"1234567890","state":"CA","specialty":"cardiology"}`

func TestCreateClinician(t *testing.T) {
	svc := &mockService{}
	var validated *model.Clinician
	svc.ValidateFunc = func(ctx context.Context, c *model.Clinician) ([]string, error) {
		validated = c
		return nil, nil
	}

	w := do(newRouter(svc), http.MethodPost, "/clinicians", janeBody)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, validated)
	assert.Equal(t, "1234567890", validated.NPINumber)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "c-1", got["clinician_id"])
	assert.Equal(t, "JANE", got["first_name"])
	assert.Equal(t, "cardiology", got["specialty"])
}

func TestCreateClinician_ValidationFailure(t *testing.T) {
	svc := &mockService{
		ValidateFunc: func(ctx context.Context, c *model.Clinician) ([]string, error) {
			return []string{clinician.MsgInvalidNPIFormat, clinician.MsgNotInRegistry}, nil
		},
	}

	w := do(newRouter(svc), http.MethodPost, "/clinicians", `{"first_name":"JANE","last_name":"DOE","npi_number":"12","state":"CA"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{clinician.MsgInvalidNPIFormat, clinician.MsgNotInRegistry}, validationErrors(t, w))
	assert.Zero(t, svc.CreateCalls)
}

func TestCreateClinician_RegistryFault(t *testing.T) {
	svc := &mockService{
		ValidateFunc: func(ctx context.Context, c *model.Clinician) ([]string, error) {
			return nil, fmt.Errorf("failed to verify clinician: %w", npi.ErrRegistryUnavailable)
		},
	}

	w := do(newRouter(svc), http.MethodPost, "/clinicians", janeBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Unable to create clinician", errorMessage(t, w))
	assert.Zero(t, svc.CreateCalls)
}

func TestCreateClinician_StoreFault(t *testing.T) {
	svc := &mockService{
		CreateFunc: func(ctx context.Context, c *model.Clinician) (*model.Clinician, error) {
			return nil, errors.New("pq: relation does not exist")
		},
	}

	w := do(newRouter(svc), http.MethodPost, "/clinicians", janeBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Unable to create clinician", errorMessage(t, w))
}

func TestCreateClinician_InvalidBody(t *testing.T) {
	r := newRouter(&mockService{})

	for _, body := range []string{`{"first_name":`, `[1,2]`, `{"first_name":42}`} {
		w := do(r, http.MethodPost, "/clinicians", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, []string{handler.MsgInvalidBody}, validationErrors(t, w), body)
	}
}

func TestListClinicians(t *testing.T) {
	svc := &mockService{
		ListFunc: func(ctx context.Context) ([]*model.Clinician, error) {
			return []*model.Clinician{{ID: "c-1", FirstName: "JANE"}}, nil
		},
	}

	w := do(newRouter(svc), http.MethodGet, "/clinicians", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "c-1", got[0]["clinician_id"])

	svc.ListFunc = func(ctx context.Context) ([]*model.Clinician, error) {
		return nil, errors.New("timeout")
	}
	w = do(newRouter(svc), http.MethodGet, "/clinicians", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Unable to fetch clinicians", errorMessage(t, w))
}

func TestGetClinician(t *testing.T) {
	svc := &mockService{
		GetFunc: func(ctx context.Context, id string) (*model.Clinician, error) {
			if id == "c-1" {
				return &model.Clinician{ID: "c-1"}, nil
			}
			return nil, fmt.Errorf("failed to get clinician: %w", repository.ErrNotFound)
		},
	}
	r := newRouter(svc)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/clinicians/c-1", "").Code)

	w := do(r, http.MethodGet, "/clinicians/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Clinician not found", errorMessage(t, w))
}

func TestUpdateClinician_MergesPartialBody(t *testing.T) {
	stored := &model.Clinician{
		ID:        "c-1",
		FirstName: "JANE",
		LastName:  "DOE",
		NPINumber: "1234567890",
		State:     "CA",
		Profile:   model.JSONMap{"specialty": "cardiology"},
	}
	var validated, saved *model.Clinician
	svc := &mockService{
		GetFunc: func(ctx context.Context, id string) (*model.Clinician, error) {
			out := *stored
			return &out, nil
		},
		ValidateFunc: func(ctx context.Context, c *model.Clinician) ([]string, error) {
			validated = c
			return nil, nil
		},
		UpdateFunc: func(ctx context.Context, id string, c *model.Clinician) (*model.Clinician, error) {
			saved = c
			return c, nil
		},
	}

	w := do(newRouter(svc), http.MethodPut, "/clinicians/c-1", `{"state":"NY"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, validated)
	assert.Equal(t, "JANE", validated.FirstName)
	assert.Equal(t, "NY", validated.State)
	assert.Equal(t, "1234567890", saved.NPINumber)
	assert.Equal(t, "cardiology", saved.Profile["specialty"])
}

func TestUpdateClinician_Failures(t *testing.T) {
	svc := &mockService{}
	r := newRouter(svc)

	w := do(r, http.MethodPut, "/clinicians/missing", `{"state":"NY"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	svc.GetFunc = func(ctx context.Context, id string) (*model.Clinician, error) {
		return &model.Clinician{ID: id, FirstName: "JANE", LastName: "DOE", NPINumber: "1234567890", State: "CA"}, nil
	}
	svc.ValidateFunc = func(ctx context.Context, c *model.Clinician) ([]string, error) {
		return []string{clinician.MsgStateRequired}, nil
	}
	w = do(r, http.MethodPut, "/clinicians/c-1", `{"state":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{clinician.MsgStateRequired}, validationErrors(t, w))

	svc.ValidateFunc = func(ctx context.Context, c *model.Clinician) ([]string, error) {
		return nil, npi.ErrRegistryUnavailable
	}
	w = do(r, http.MethodPut, "/clinicians/c-1", `{"state":"NY"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Unable to update clinician", errorMessage(t, w))
}

func TestDeleteClinician(t *testing.T) {
	svc := &mockService{}
	r := newRouter(svc)

	w := do(r, http.MethodDelete, "/clinicians/anything", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	svc.DeleteFunc = func(ctx context.Context, id string) error { return errors.New("conn reset") }
	w = do(r, http.MethodDelete, "/clinicians/c-1", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Unable to delete clinician", errorMessage(t, w))
}
