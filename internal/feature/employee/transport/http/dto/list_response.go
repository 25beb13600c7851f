package dto

import "employee_backend/internal/feature/employee/domain/entity"

// ListResponse is the response body of the /employees endpoint.
// TotalCount always equals the length of Employees (no pagination).
type ListResponse struct {
	Employees  []entity.Employee `json:"employees"`
	TotalCount int64             `json:"totalCount"`
}
