package employeesalary

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	PartitionKeyPrefix = "employee_salary:partition:"
	PartitionIndexKey  = "employee_salary:partitions"
)

// PartitionKey is the hash holding every row of one employee, keyed by
// process date.
func PartitionKey(employeeID string) string {
	return PartitionKeyPrefix + employeeID
}

// redisRow is the stored form of a row. Salary is a string so no digits are
// lost to float conversion.
type redisRow struct {
	ID          string  `json:"id"`
	ProcessDate string  `json:"processDate"`
	Name        *string `json:"name"`
	Salary      *string `json:"salary"`
	Status      *string `json:"status"`
}

type redisRepository struct {
	rdb *redis.Client
}

func NewRedisRepository(rdb *redis.Client) Repository {
	return &redisRepository{rdb: rdb}
}

func (r *redisRepository) FindAll(ctx context.Context) ([]EmployeeSalary, error) {
	ids, err := r.rdb.SMembers(ctx, PartitionIndexKey).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)

	salaries := make([]EmployeeSalary, 0)
	for _, id := range ids {
		rows, err := r.FindByEmployeeID(ctx, id)
		if err != nil {
			return nil, err
		}
		salaries = append(salaries, rows...)
	}
	return salaries, nil
}

func (r *redisRepository) FindByEmployeeID(ctx context.Context, employeeID string) ([]EmployeeSalary, error) {
	fields, err := r.rdb.HGetAll(ctx, PartitionKey(employeeID)).Result()
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(fields))
	for date := range fields {
		dates = append(dates, date)
	}
	// YYYY-MM-DD sorts lexically in calendar order.
	sort.Strings(dates)

	salaries := make([]EmployeeSalary, 0, len(dates))
	for _, date := range dates {
		salary, err := decodeRedisRow(fields[date])
		if err != nil {
			return nil, fmt.Errorf("decode row %s/%s: %w", employeeID, date, err)
		}
		salaries = append(salaries, salary)
	}
	return salaries, nil
}

func (r *redisRepository) Save(ctx context.Context, salary *EmployeeSalary) (*EmployeeSalary, error) {
	payload, err := encodeRedisRow(*salary)
	if err != nil {
		return nil, err
	}

	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, PartitionKey(salary.ID), salary.ProcessDate.Format(DateLayout), payload)
		pipe.SAdd(ctx, PartitionIndexKey, salary.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return salary, nil
}

func encodeRedisRow(salary EmployeeSalary) (string, error) {
	row := redisRow{
		ID:          salary.ID,
		ProcessDate: salary.ProcessDate.Format(DateLayout),
		Name:        salary.Name,
		Status:      salary.Status,
	}
	if salary.Salary.Valid {
		s := formatDecimal(salary.Salary.Decimal)
		row.Salary = &s
	}

	b, err := json.Marshal(row)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeRedisRow(raw string) (EmployeeSalary, error) {
	var row redisRow
	if err := json.Unmarshal([]byte(raw), &row); err != nil {
		return EmployeeSalary{}, err
	}

	processDate, err := time.Parse(DateLayout, row.ProcessDate)
	if err != nil {
		return EmployeeSalary{}, err
	}

	salary := EmployeeSalary{
		ID:          row.ID,
		ProcessDate: processDate,
		Name:        row.Name,
		Status:      row.Status,
	}
	if row.Salary != nil {
		d, err := decimal.NewFromString(*row.Salary)
		if err != nil {
			return EmployeeSalary{}, err
		}
		salary.Salary = decimal.NullDecimal{Decimal: d, Valid: true}
	}
	return salary, nil
}
