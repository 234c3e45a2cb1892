package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-salary/internal/employeesalary"
	"go-salary/internal/employeesalary/mock"
	"go-salary/internal/health"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRegisterModules_MountsSalaryRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	repo.EXPECT().FindAll(gomock.Any()).Return([]employeesalary.EmployeeSalary{}, nil)
	repo.EXPECT().FindByEmployeeID(gomock.Any(), "E404").Return([]employeesalary.EmployeeSalary{}, nil)

	router := gin.New()
	registerModules(router, Config{}, repo, employeesalary.NewNoopEventPublisher(), health.PingFunc(func(context.Context) error { return nil }))

	for _, path := range []string{"/api/v1/salary/search/all", "/api/v1/salary/search/E404"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `[]`, w.Body.String(), path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/salary/create", strings.NewReader(`{"processDate":"2024-01-31"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "id required")
}

func TestRegisterModules_HealthReflectsStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeErr := errors.New("connection refused")
	ping := health.PingFunc(func(context.Context) error { return storeErr })

	router := gin.New()
	registerModules(router, Config{}, mock.NewMockRepository(ctrl), employeesalary.NewNoopEventPublisher(), ping)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	storeErr = nil
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"UP"}`, w.Body.String())
}
