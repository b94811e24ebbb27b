package patient

import (
	"context"
	"encoding/json"
	"errors"
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
	"github.com/totallife/clinical-api/internal/repository"
	"github.com/totallife/clinical-api/internal/service/event"
	"github.com/totallife/clinical-api/internal/service/patient"
	"github.com/totallife/clinical-api/pkg/validator"
)

// memoryRepo backs the real patient service so the tests cover the whole
// request path except SQL
type memoryRepo struct {
	rows map[string]*model.Patient
	seq  int
	err  error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: map[string]*model.Patient{}}
}

func (r *memoryRepo) Create(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.seq++
	out := *p
	out.ID = "p-" + string(rune('0'+r.seq))
	r.rows[out.ID] = &out
	return &out, nil
}

func (r *memoryRepo) Get(ctx context.Context, id string) (*model.Patient, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (r *memoryRepo) Update(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	if r.err != nil {
		return nil, r.err
	}
	if _, ok := r.rows[p.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	out := *p
	r.rows[p.ID] = &out
	return &out, nil
}

func (r *memoryRepo) Delete(ctx context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	delete(r.rows, id)
	return nil
}

func (r *memoryRepo) List(ctx context.Context) ([]*model.Patient, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []*model.Patient{}
	for _, p := range r.rows {
		out = append(out, p)
	}
	return out, nil
}

func newRouter(repo *memoryRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := patient.NewService(repo, validator.New(), event.NewEventService(nil, "", nil))

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

const annBody = `{
  "first_name": "Ann",
  "last_name": "Lee",
  "date_of_birth": "1990-01-01",
  "address": "1 Main St",
  "phone_number": "555-0100",
  "email": "ann@example.com"
}`

func TestPatientLifecycle(t *testing.T) {
	r := newRouter(newMemoryRepo())

	w := do(r, http.MethodPost, "/patients", annBody)
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Ann", created.FirstName)

	w = do(r, http.MethodGet, "/patients/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var fetched model.Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)

	updateBody := strings.Replace(annBody, `"Ann"`, `"Anne"`, 1)
	w = do(r, http.MethodPut, "/patients/"+created.ID, updateBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"first_name":"Anne"`)

	w = do(r, http.MethodGet, "/patients", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []model.Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	w = do(r, http.MethodDelete, "/patients/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodGet, "/patients/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Patient not found"}`, w.Body.String())

	// Deleting again is not an error
	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/patients/"+created.ID, "").Code)
}

func TestCreatePatient_MissingFields(t *testing.T) {
	r := newRouter(newMemoryRepo())

	w := do(r, http.MethodPost, "/patients", `{"first_name":"Ann","last_name":"  ","address":"1 Main St","phone_number":"555","email":"a@b.c"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":["Missing required fields: last_name, date_of_birth"]}`, w.Body.String())
}

func TestCreatePatient_InvalidBody(t *testing.T) {
	r := newRouter(newMemoryRepo())

	w := do(r, http.MethodPost, "/patients", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body handler.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{handler.MsgInvalidBody}, body.Errors)
}

func TestUpdatePatient_NotFound(t *testing.T) {
	r := newRouter(newMemoryRepo())

	w := do(r, http.MethodPut, "/patients/nope", annBody)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Patient not found"}`, w.Body.String())
}

func TestUpdatePatient_RequiresFullBody(t *testing.T) {
	repo := newMemoryRepo()
	r := newRouter(repo)
	created, err := repo.Create(context.Background(), &model.Patient{FirstName: "Ann"})
	require.NoError(t, err)

	w := do(r, http.MethodPut, "/patients/"+created.ID, `{"first_name":"Anne"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t,
		`{"errors":["Missing required fields: last_name, date_of_birth, address, phone_number, email"]}`,
		w.Body.String())
}

func TestPatient_StoreFault(t *testing.T) {
	repo := newMemoryRepo()
	repo.err = errors.New("pq: too many connections")
	r := newRouter(repo)

	tests := []struct {
		method, path, body, message string
	}{
		{http.MethodPost, "/patients", annBody, "Unable to create patient"},
		{http.MethodGet, "/patients", "", "Unable to fetch patients"},
		{http.MethodGet, "/patients/p-1", "", "Unable to fetch patient"},
		{http.MethodPut, "/patients/p-1", annBody, "Unable to update patient"},
		{http.MethodDelete, "/patients/p-1", "", "Unable to delete patient"},
	}
	for _, tt := range tests {
		w := do(r, tt.method, tt.path, tt.body)
		assert.Equal(t, http.StatusInternalServerError, w.Code, tt.method+" "+tt.path)
		assert.JSONEq(t, `{"error":"`+tt.message+`"}`, w.Body.String())
	}
}
