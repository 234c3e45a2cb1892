package employeesalary

import (
	"bytes"
	"errors"
	"net/http"

	employeesalaryerrors "go-salary/internal/employeesalary/errors"
	"go-salary/internal/shared/apperror"
	"go-salary/internal/shared/contextutil"
	"go-salary/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	apperror.Init()
	l := zap.L().Named("employeesalary.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeesalary.handler")
	}
	return &Handler{service: service, logger: l}
}

// writeServiceError renders an error the service has already logged.
func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// rejectRequest handles input refused before it reaches the service.
func (h *Handler) rejectRequest(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	contextutil.GetLogger(c.Request.Context(), h.logger).Warn("employee salary request rejected",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	h.logger.Debug("http create employee salary")

	body, err := c.GetRawData()
	if err != nil || isEmptyBody(body) {
		h.rejectRequest(c, employeesalaryerrors.ErrMissingBody)
		return
	}

	var req CreateEmployeeSalaryRequest
	if err := binding.JSON.BindBody(body, &req); err != nil {
		h.rejectRequest(c, mapBindingError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	h.logger.Debug("http get all employee salaries")

	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) GetByEmployeeID(c *gin.Context) {
	employeeID := c.Param("id")
	h.logger.Debug("http get employee salaries", zap.String("employee_id", employeeID))

	resp, err := h.service.GetByEmployeeID(c.Request.Context(), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func isEmptyBody(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func mapBindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperror.MapValidationError(verrs)
	}
	return apperror.ErrInvalidInput
}
