package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"godown-dashboard/internal/storage"
)

type MockEmployeeSaver struct {
	mock.Mock
}

func (m *MockEmployeeSaver) SaveEmployee(ctx context.Context, name string) (*storage.Employee, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Employee), args.Error(1)
}

func TestSaveEmployee_Success(t *testing.T) {
	saver := new(MockEmployeeSaver)
	saver.On("SaveEmployee", mock.Anything, "Asha").
		Return(&storage.Employee{ID: 1, Name: "Asha", Active: true}, nil)

	handler := SaveEmployee(slog.Default(), saver)

	req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(`{"name":"Asha"}`))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp storage.Employee
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.True(t, resp.Active)

	saver.AssertExpectations(t)
}

func TestSaveEmployee_MissingName(t *testing.T) {
	saver := new(MockEmployeeSaver)
	handler := SaveEmployee(slog.Default(), saver)

	req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Name is required")
	saver.AssertNotCalled(t, "SaveEmployee")
}

func TestSaveEmployee_InvalidJSON(t *testing.T) {
	saver := new(MockEmployeeSaver)
	handler := SaveEmployee(slog.Default(), saver)

	req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	saver.AssertNotCalled(t, "SaveEmployee")
}

func TestSaveEmployee_StorageError(t *testing.T) {
	saver := new(MockEmployeeSaver)
	saver.On("SaveEmployee", mock.Anything, "Asha").Return(nil, assert.AnError)

	handler := SaveEmployee(slog.Default(), saver)

	req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(`{"name":"Asha"}`))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	saver.AssertExpectations(t)
}
