package employeesalary

import "encoding/json"

type CreateEmployeeSalaryRequest struct {
	ID          string  `json:"id" binding:"notblank"`
	ProcessDate *string `json:"processDate"`
	Name        *string `json:"name"`
	// Salary is kept raw: clients send either a JSON number or a numeric string.
	Salary json.RawMessage `json:"salary"`
	Status *string         `json:"status"`
}

type EmployeeSalaryResponse struct {
	ID          string       `json:"id"`
	ProcessDate *string      `json:"processDate"`
	Name        *string      `json:"name"`
	Salary      *json.Number `json:"salary"`
	Status      *string      `json:"status"`
}
