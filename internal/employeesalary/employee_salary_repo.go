package employeesalary

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=employee_salary_repo.go -destination=mock/employee_salary_repo_mock.go -package=mock
type Repository interface {
	// FindAll returns every row in store order.
	FindAll(ctx context.Context) ([]EmployeeSalary, error)
	// FindByEmployeeID returns one partition ordered by process date.
	FindByEmployeeID(ctx context.Context, employeeID string) ([]EmployeeSalary, error)
	// Save upserts by (id, process date) and returns the stored row.
	Save(ctx context.Context, salary *EmployeeSalary) (*EmployeeSalary, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]EmployeeSalary, error) {
	salaries := make([]EmployeeSalary, 0)
	err := r.db.WithContext(ctx).Find(&salaries).Error
	return salaries, err
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) ([]EmployeeSalary, error) {
	salaries := make([]EmployeeSalary, 0)
	err := r.db.WithContext(ctx).
		Where("id = ?", employeeID).
		Order("process_date ASC").
		Find(&salaries).Error
	return salaries, err
}

func (r *repository) Save(ctx context.Context, salary *EmployeeSalary) (*EmployeeSalary, error) {
	err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}, {Name: "process_date"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "salary", "status"}),
			},
			clause.Returning{},
		).
		Create(salary).Error
	if err != nil {
		return nil, err
	}
	return salary, nil
}
