package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/overtime-api/internal/domain"
	"github.com/overtime-api/internal/dto"
	"github.com/overtime-api/internal/handler"
	"github.com/overtime-api/internal/repository"
	"github.com/overtime-api/internal/service"
	"github.com/overtime-api/internal/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	server  *httptest.Server
	tempDir string
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := storagetest.Logger()
	db := storagetest.New(t).DB()
	tempDir := t.TempDir()

	tx := repository.NewTransactor(db)
	deptRepo := repository.NewDepartmentRepository(db)
	postRepo := repository.NewPostRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	actionTypeRepo := repository.NewActionTypeRepository(db)
	empRepo := repository.NewEmployeeRepository(db)
	actionRepo := repository.NewActionRepository(db)

	router := handler.NewRouter(handler.Handlers{
		Departments: handler.NewDepartmentHandler(service.NewDepartmentService(tx, deptRepo), logger),
		Posts:       handler.NewPostHandler(service.NewPostService(tx, postRepo), logger),
		Employees:   handler.NewEmployeeHandler(service.NewEmployeeService(tx, empRepo, deptRepo, postRepo, roleRepo), logger),
		Actions:     handler.NewActionHandler(service.NewActionService(tx, actionRepo, empRepo, actionTypeRepo), logger),
		References:  handler.NewReferenceHandler(service.NewReferenceService(roleRepo, actionTypeRepo), logger),
		Documents:   handler.NewDocumentHandler(service.NewDocumentService(tempDir), logger),
	}, 0, logger)

	ts := &testServer{
		server:  httptest.NewServer(router.Setup()),
		tempDir: tempDir,
	}
	t.Cleanup(ts.server.Close)
	return ts
}

func (ts *testServer) url(path string) string {
	return ts.server.URL + path
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

// mustEmployee создаёт отдел, должность и сотрудника с ролью "сотрудник"
func (ts *testServer) mustEmployee(t *testing.T) dto.EmployeeResponse {
	t.Helper()

	resp := doJSON(t, http.MethodPost, ts.url("/otdels"), map[string]any{"name_otdel": "Engineering"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	dept := decodeBody[dto.DepartmentResponse](t, resp)

	resp = doJSON(t, http.MethodPost, ts.url("/posts"), map[string]any{"name_post": "Developer"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	post := decodeBody[dto.PostResponse](t, resp)

	resp = doJSON(t, http.MethodPost, ts.url("/employees"), map[string]any{
		"surname":    "Иванов",
		"name":       "Иван",
		"patronymic": "Иванович",
		"login":      "ivanov",
		"password":   "secret",
		"otdel_id":   dept.ID,
		"post_id":    post.ID,
		"role_id":    domain.RoleEmployeeID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody[dto.EmployeeResponse](t, resp)
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t)

	resp := doJSON(t, http.MethodGet, ts.url("/health"), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "работает", decodeBody[dto.StatusResponse](t, resp).Status)
}

func TestRoot(t *testing.T) {
	ts := setupTestServer(t)

	resp := doJSON(t, http.MethodGet, ts.url("/"), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, decodeBody[dto.MessageResponse](t, resp).Message)
}

func TestSecurityHeaders(t *testing.T) {
	ts := setupTestServer(t)

	resp := doJSON(t, http.MethodGet, ts.url("/health"), nil)
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
}

func TestUnknownRoute(t *testing.T) {
	ts := setupTestServer(t)

	resp := doJSON(t, http.MethodGet, ts.url("/unknown"), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, decodeBody[dto.ErrorResponse](t, resp).Error)
}

func TestMethodNotAllowed(t *testing.T) {
	ts := setupTestServer(t)

	resp := doJSON(t, http.MethodPatch, ts.url("/actions/1"), map[string]any{})
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestDepartment_CRUD(t *testing.T) {
	ts := setupTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.url("/otdels/create"), map[string]any{"name_otdel": "Engineering"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	dept := decodeBody[dto.DepartmentResponse](t, resp)
	assert.Positive(t, dept.ID)
	assert.Equal(t, "Engineering", dept.Name)

	resp = doJSON(t, http.MethodGet, ts.url("/otdels/all"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody[[]dto.DepartmentResponse](t, resp), 1)

	id := strconv.FormatInt(dept.ID, 10)
	resp = doJSON(t, http.MethodPut, ts.url("/otdels/"+id), map[string]any{"name_otdel": "R&D"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "R&D", decodeBody[dto.DepartmentResponse](t, resp).Name)

	resp = doJSON(t, http.MethodGet, ts.url("/otdels/"+id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "R&D", decodeBody[dto.DepartmentResponse](t, resp).Name)

	resp = doJSON(t, http.MethodDelete, ts.url("/otdels/"+id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, decodeBody[dto.MessageResponse](t, resp).Message)

	resp = doJSON(t, http.MethodGet, ts.url("/otdels/"+id), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDepartment_DuplicateName(t *testing.T) {
	ts := setupTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.url("/otdels"), map[string]any{"name_otdel": "Engineering"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, ts.url("/otdels"), map[string]any{"name_otdel": "Engineering"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestDepartment_ValidationErrors(t *testing.T) {
	ts := setupTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"empty name", http.MethodPost, "/otdels", map[string]any{"name_otdel": ""}, http.StatusBadRequest},
		{"missing name", http.MethodPost, "/otdels", map[string]any{}, http.StatusBadRequest},
		{"invalid id", http.MethodGet, "/otdels/abc", nil, http.StatusBadRequest},
		{"zero id", http.MethodGet, "/otdels/0", nil, http.StatusBadRequest},
		{"missing update", http.MethodPut, "/otdels/999", map[string]any{"name_otdel": "X"}, http.StatusNotFound},
		{"missing delete", http.MethodDelete, "/otdels/999", nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, tt.method, ts.url(tt.path), tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.NotEmpty(t, decodeBody[dto.ErrorResponse](t, resp).Error)
		})
	}
}

func TestDepartment_MalformedJSON(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := http.Post(ts.url("/otdels"), "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPost_UpdateRenames(t *testing.T) {
	ts := setupTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.url("/posts"), map[string]any{"name_post": "Junior"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	post := decodeBody[dto.PostResponse](t, resp)

	id := strconv.FormatInt(post.ID, 10)
	resp = doJSON(t, http.MethodPut, ts.url("/posts/"+id), map[string]any{"name_post": "Senior"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, ts.url("/posts/"+id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Senior", decodeBody[dto.PostResponse](t, resp).Name)

	resp = doJSON(t, http.MethodPost, ts.url("/posts"), map[string]any{"name_post": "Senior"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestReferences(t *testing.T) {
	ts := setupTestServer(t)

	resp := doJSON(t, http.MethodGet, ts.url("/roles"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	roles := decodeBody[[]dto.RoleResponse](t, resp)
	require.Len(t, roles, 2)
	assert.Equal(t, "админ", roles[0].Name)
	assert.Equal(t, "сотрудник", roles[1].Name)

	resp = doJSON(t, http.MethodGet, ts.url("/actiontypes/2"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Переработка", decodeBody[dto.ActionTypeResponse](t, resp).Name)

	resp = doJSON(t, http.MethodGet, ts.url("/roles/99"), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Справочники только на чтение
	resp = doJSON(t, http.MethodPost, ts.url("/roles"), map[string]any{"name_role": "x"})
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestEmployee_CreateDenormalized(t *testing.T) {
	ts := setupTestServer(t)

	emp := ts.mustEmployee(t)
	assert.Positive(t, emp.ID)
	assert.Equal(t, "Engineering", emp.DepartmentName)
	assert.Equal(t, "Developer", emp.PostName)
	assert.Equal(t, "сотрудник", emp.RoleName)
	assert.Zero(t, emp.IdleHours)

	resp := doJSON(t, http.MethodGet, ts.url("/employees/"+strconv.FormatInt(emp.ID, 10)), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.NotContains(t, raw, "password")
	assert.Equal(t, "Engineering", raw["name_otdel"])
}

func TestEmployee_UnknownReferences(t *testing.T) {
	ts := setupTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.url("/employees/create"), map[string]any{
		"surname":    "Петров",
		"name":       "Пётр",
		"patronymic": "Петрович",
		"login":      "petrov",
		"password":   "secret",
		"otdel_id":   42,
		"post_id":    42,
		"role_id":    domain.RoleEmployeeID,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, ts.url("/employees/all"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]dto.EmployeeResponse](t, resp))
}

func TestEmployee_AddHours(t *testing.T) {
	ts := setupTestServer(t)
	emp := ts.mustEmployee(t)
	path := "/employees/" + strconv.FormatInt(emp.ID, 10) + "/add-hours"

	resp := doJSON(t, http.MethodPut, ts.url(path), map[string]any{"idle_hours": 5})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 5, decodeBody[dto.EmployeeResponse](t, resp).IdleHours)

	resp = doJSON(t, http.MethodPut, ts.url(path), map[string]any{"idle_hours": -7})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, -2, decodeBody[dto.EmployeeResponse](t, resp).IdleHours)

	resp = doJSON(t, http.MethodPut, ts.url(path), map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodPut, ts.url("/employees/999/add-hours"), map[string]any{"idle_hours": 1})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEmployee_PatchAndDelete(t *testing.T) {
	ts := setupTestServer(t)
	emp := ts.mustEmployee(t)
	path := "/employees/" + strconv.FormatInt(emp.ID, 10)

	resp := doJSON(t, http.MethodPatch, ts.url(path), map[string]any{"surname": "Сидоров", "role_id": domain.RoleAdminID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[dto.EmployeeResponse](t, resp)
	assert.Equal(t, "Сидоров", updated.Surname)
	assert.Equal(t, "Иван", updated.Name)
	assert.Equal(t, "админ", updated.RoleName)

	resp = doJSON(t, http.MethodPatch, ts.url(path), map[string]any{"post_id": 999})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, ts.url(path), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, ts.url(path), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAction_CreateAccruesHours(t *testing.T) {
	ts := setupTestServer(t)
	emp := ts.mustEmployee(t)

	resp := doJSON(t, http.MethodPost, ts.url("/actions"), map[string]any{
		"hours":         8,
		"date_action":   "2024-03-01",
		"employee_id":   emp.ID,
		"actiontype_id": domain.ActionTypeOvertimeID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	action := decodeBody[dto.ActionResponse](t, resp)
	assert.Equal(t, "2024-03-01", action.Date)
	assert.EqualValues(t, 8, action.Hours)

	resp = doJSON(t, http.MethodGet, ts.url("/employees/"+strconv.FormatInt(emp.ID, 10)), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 8, decodeBody[dto.EmployeeResponse](t, resp).IdleHours)

	resp = doJSON(t, http.MethodGet, ts.url("/actions/all"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody[[]dto.ActionResponse](t, resp), 1)

	resp = doJSON(t, http.MethodDelete, ts.url("/actions/"+strconv.FormatInt(action.ID, 10)), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Удаление действия не откатывает часы
	resp = doJSON(t, http.MethodGet, ts.url("/employees/"+strconv.FormatInt(emp.ID, 10)), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 8, decodeBody[dto.EmployeeResponse](t, resp).IdleHours)
}

func TestAction_Rejected(t *testing.T) {
	ts := setupTestServer(t)
	emp := ts.mustEmployee(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"unknown employee", map[string]any{"hours": 8, "date_action": "2024-03-01", "employee_id": 999, "actiontype_id": 2}},
		{"unknown action type", map[string]any{"hours": 8, "date_action": "2024-03-01", "employee_id": emp.ID, "actiontype_id": 99}},
		{"invalid date", map[string]any{"hours": 8, "date_action": "01.03.2024", "employee_id": emp.ID, "actiontype_id": 2}},
		{"missing date", map[string]any{"hours": 8, "employee_id": emp.ID, "actiontype_id": 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, http.MethodPost, ts.url("/actions"), tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}

	resp := doJSON(t, http.MethodGet, ts.url("/actions"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]dto.ActionResponse](t, resp))

	resp = doJSON(t, http.MethodGet, ts.url("/employees/"+strconv.FormatInt(emp.ID, 10)), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, decodeBody[dto.EmployeeResponse](t, resp).IdleHours)
}

func TestDocument_Holiday(t *testing.T) {
	ts := setupTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.url("/documents/holiday"), map[string]any{
		"surname":      "Иванов",
		"name":         "Иван",
		"patronymic":   "Иванович",
		"holiday_date": "2024-03-01",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/msword", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "holiday_document_")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "01.03.2024")
	assert.Contains(t, string(body), "Иванов")
	assert.Contains(t, string(body), "Иванович")

	entries, err := os.ReadDir(ts.tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDocument_InvalidDate(t *testing.T) {
	ts := setupTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.url("/documents/holiday"), map[string]any{
		"surname":      "Иванов",
		"name":         "Иван",
		"patronymic":   "Иванович",
		"holiday_date": "not-a-date",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, decodeBody[dto.ErrorResponse](t, resp).Message)

	entries, err := os.ReadDir(ts.tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

type failingDepartmentService struct{}

func (failingDepartmentService) Create(context.Context, *dto.CreateDepartmentRequest) (*domain.Department, error) {
	return nil, errors.New("db is down")
}

func (failingDepartmentService) List(context.Context) ([]domain.Department, error) {
	return nil, errors.New("db is down")
}

func (failingDepartmentService) GetByID(context.Context, int64) (*domain.Department, error) {
	return nil, errors.New("db is down")
}

func (failingDepartmentService) Update(context.Context, int64, *dto.CreateDepartmentRequest) (*domain.Department, error) {
	return nil, errors.New("db is down")
}

func (failingDepartmentService) Delete(context.Context, int64) error {
	return errors.New("db is down")
}

func TestInternalError(t *testing.T) {
	logger := storagetest.Logger()
	router := handler.NewRouter(handler.Handlers{
		Departments: handler.NewDepartmentHandler(failingDepartmentService{}, logger),
		Posts:       handler.NewPostHandler(nil, logger),
		Employees:   handler.NewEmployeeHandler(nil, logger),
		Actions:     handler.NewActionHandler(nil, logger),
		References:  handler.NewReferenceHandler(nil, logger),
		Documents:   handler.NewDocumentHandler(nil, logger),
	}, 0, logger)

	srv := httptest.NewServer(router.Setup())
	t.Cleanup(srv.Close)

	resp := doJSON(t, http.MethodGet, srv.URL+"/otdels", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	errResp := decodeBody[dto.ErrorResponse](t, resp)
	assert.NotEmpty(t, errResp.Error)
	assert.Contains(t, errResp.Message, "db is down")
}
