package employeesalary

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	"go-salary/internal/events"
	"go-salary/internal/shared/contextutil"

	employeesalaryerrors "go-salary/internal/employeesalary/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeSalaryRequest) (EmployeeSalaryResponse, error)
	GetAll(ctx context.Context) ([]EmployeeSalaryResponse, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]EmployeeSalaryResponse, error)
}

type service struct {
	repo      Repository
	publisher EventPublisher
	logger    *zap.Logger
}

func NewService(repo Repository, publisher EventPublisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("employeesalary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeesalary.service")
	}
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	return &service{repo: repo, publisher: publisher, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeSalaryRequest,
) (EmployeeSalaryResponse, error) {
	log := s.log(ctx)
	log.Debug("create employee salary requested", zap.String("employee_id", req.ID))

	salary, err := buildEmployeeSalary(req)
	if err != nil {
		log.Warn("create employee salary rejected",
			zap.String("employee_id", req.ID),
			zap.Error(err),
		)
		return EmployeeSalaryResponse{}, err
	}

	saved, err := s.repo.Save(ctx, salary)
	if err != nil {
		log.Error("create employee salary persist failed",
			append(storeErrorFields(err), zap.String("employee_id", req.ID))...,
		)
		return EmployeeSalaryResponse{}, mapWriteError(err)
	}

	processDate := saved.ProcessDate.Format(DateLayout)
	event := events.SalaryRecordSavedEvent{
		EventID:     uuid.NewString(),
		EventType:   "salary_record_saved",
		RequestID:   contextutil.GetRequestID(ctx),
		EmployeeID:  saved.ID,
		ProcessDate: processDate,
		OccurredAt:  time.Now().UTC(),
	}
	if err := s.publisher.PublishSalaryRecordSaved(ctx, event); err != nil {
		log.Warn("publish salary_record_saved failed",
			zap.String("employee_id", saved.ID),
			zap.String("process_date", processDate),
			zap.Error(err),
		)
	}

	log.Info("create employee salary success",
		zap.String("employee_id", saved.ID),
		zap.String("process_date", processDate),
	)
	return mapToResponse(*saved), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeSalaryResponse, error) {
	log := s.log(ctx)
	log.Debug("get all employee salaries requested")

	salaries, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error("get all employee salaries failed", storeErrorFields(err)...)
		return nil, mapReadError(err)
	}

	return mapToListResponse(salaries), nil
}

func (s *service) GetByEmployeeID(ctx context.Context, employeeID string) ([]EmployeeSalaryResponse, error) {
	log := s.log(ctx)
	log.Debug("get employee salaries requested", zap.String("employee_id", employeeID))

	salaries, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		log.Error("get employee salaries failed",
			append(storeErrorFields(err), zap.String("employee_id", employeeID))...,
		)
		return nil, mapReadError(err)
	}

	return mapToListResponse(salaries), nil
}

func (s *service) log(ctx context.Context) *zap.Logger {
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		return s.logger.With(zap.String("request_id", rid))
	}
	return s.logger
}

// buildEmployeeSalary runs the create checks in order: id, process date,
// salary. Name and status pass through untouched.
func buildEmployeeSalary(req CreateEmployeeSalaryRequest) (*EmployeeSalary, error) {
	if strings.TrimSpace(req.ID) == "" {
		return nil, employeesalaryerrors.ErrIDRequired
	}

	processDate, err := parseProcessDate(req.ProcessDate)
	if err != nil {
		return nil, err
	}

	salary, err := parseSalary(req.Salary)
	if err != nil {
		return nil, err
	}

	return &EmployeeSalary{
		ID:          req.ID,
		ProcessDate: processDate,
		Name:        req.Name,
		Salary:      salary,
		Status:      req.Status,
	}, nil
}

func parseProcessDate(raw *string) (time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return time.Time{}, employeesalaryerrors.ErrProcessDateRequired
	}

	processDate, err := time.Parse(DateLayout, *raw)
	if err != nil {
		return time.Time{}, employeesalaryerrors.ErrInvalidProcessDate
	}
	return processDate, nil
}

// parseSalary accepts a JSON number or a JSON string holding a number.
// Absent and null both mean no salary.
func parseSalary(raw json.RawMessage) (decimal.NullDecimal, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return decimal.NullDecimal{}, nil
	}

	text := string(trimmed)
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return decimal.NullDecimal{}, employeesalaryerrors.ErrInvalidSalary
		}
		text = strings.TrimSpace(s)
	}

	d, err := decimal.NewFromString(text)
	if err != nil || !fitsNumeric(d) {
		return decimal.NullDecimal{}, employeesalaryerrors.ErrInvalidSalary
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}

// Postgres NUMERIC limits.
const (
	maxSalaryIntegerDigits  = 131072
	maxSalaryFractionDigits = 16383
)

// fitsNumeric bounds the digits a salary expands to when rendered in full.
func fitsNumeric(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < -maxSalaryFractionDigits {
		return false
	}
	return int64(d.NumDigits())+exp <= maxSalaryIntegerDigits
}

// formatDecimal keeps the stored scale, so 75000.50 stays 75000.50.
func formatDecimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

func mapToResponse(salary EmployeeSalary) EmployeeSalaryResponse {
	resp := EmployeeSalaryResponse{
		ID:     salary.ID,
		Name:   salary.Name,
		Status: salary.Status,
	}
	if !salary.ProcessDate.IsZero() {
		pd := salary.ProcessDate.Format(DateLayout)
		resp.ProcessDate = &pd
	}
	if salary.Salary.Valid {
		n := json.Number(formatDecimal(salary.Salary.Decimal))
		resp.Salary = &n
	}
	return resp
}

func mapToListResponse(salaries []EmployeeSalary) []EmployeeSalaryResponse {
	res := make([]EmployeeSalaryResponse, len(salaries))
	for i, salary := range salaries {
		res[i] = mapToResponse(salary)
	}
	return res
}
