package employeesalary

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the only accepted wire format for processDate.
const DateLayout = "2006-01-02"

// EmployeeSalary is one row of employee_salary. ID is the partition key and
// ProcessDate the clustering key; together they identify the row.
type EmployeeSalary struct {
	ID          string              `gorm:"column:id;primaryKey"`
	ProcessDate time.Time           `gorm:"column:process_date;type:date;primaryKey"`
	Name        *string             `gorm:"column:name"`
	Salary      decimal.NullDecimal `gorm:"column:salary;type:numeric"`
	Status      *string             `gorm:"column:status"`
}

func (EmployeeSalary) TableName() string {
	return "employee_salary"
}
