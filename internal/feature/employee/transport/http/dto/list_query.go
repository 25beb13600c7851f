// Package dto defines data transfer objects for the employee feature's HTTP transport layer.
package dto

// ListQuery represents the query parameters of the /employees endpoint.
type ListQuery struct {
	SearchTerm string `form:"searchTerm"`
	SortField  string `form:"sortField,default=name"`
	SortOrder  string `form:"sortOrder,default=asc"`
}
