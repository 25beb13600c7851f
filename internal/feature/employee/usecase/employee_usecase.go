// Package usecase implements the business logic for the employee feature.
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"

	"employee_backend/internal/feature/employee/domain/entity"
)

// EmployeeRepository abstracts the persistence layer for employee records.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type EmployeeRepository interface {
	// Create persists a new employee record.
	// It returns ErrDuplicateEmail if the email is already taken.
	Create(ctx context.Context, emp *entity.Employee) error

	// FindByID retrieves an employee by ID.
	// It returns ErrEmployeeNotFound if no record matches.
	FindByID(ctx context.Context, id uint) (*entity.Employee, error)

	// Update overwrites an existing employee record.
	// It returns ErrDuplicateEmail if the new email collides with another record.
	Update(ctx context.Context, emp *entity.Employee) error

	// Delete removes an employee by ID. A missing ID is not an error.
	Delete(ctx context.Context, id uint) error

	// List returns the records matching the query plus the total match count.
	List(ctx context.Context, q ListQuery) ([]entity.Employee, int64, error)
}

// ImageStorage abstracts the on-disk store for uploaded profile images.
// Save rejects files that are not JPEG or PNG by content.
type ImageStorage interface {
	Save(file *multipart.FileHeader) (string, error)
	Remove(filename string) error
}

// EmployeeInput carries the mutable employee fields of a create or update request.
type EmployeeInput struct {
	Name        string
	Email       string
	Mobile      string
	Designation string
	Gender      string
	Course      []string
}

// ListQuery describes the filter and ordering of a list request.
// SearchTerm matches name or email case-insensitively as a substring.
type ListQuery struct {
	SearchTerm string
	SortField  string
	SortOrder  string
}

// EmployeeUsecase provides business logic for employee directory operations.
type EmployeeUsecase struct {
	repo    EmployeeRepository
	storage ImageStorage
}

// NewEmployeeUsecase creates a new EmployeeUsecase with the given repository and image storage.
func NewEmployeeUsecase(repo EmployeeRepository, storage ImageStorage) *EmployeeUsecase {
	return &EmployeeUsecase{repo: repo, storage: storage}
}

// Create stores the uploaded image and inserts the employee record.
// If the insert is rejected because the email is already taken, the staged
// image file is removed again so a rejected submission leaves no orphan on disk.
func (u *EmployeeUsecase) Create(ctx context.Context, in EmployeeInput, image *multipart.FileHeader) error {
	filename, err := u.storage.Save(image)
	if err != nil {
		return err
	}

	emp := &entity.Employee{
		Name:        in.Name,
		Email:       in.Email,
		Mobile:      in.Mobile,
		Designation: in.Designation,
		Gender:      in.Gender,
		Course:      in.Course,
		Image:       filename,
	}
	if err := u.repo.Create(ctx, emp); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			if rmErr := u.storage.Remove(filename); rmErr != nil {
				slog.Warn("failed to remove staged upload", "filename", filename, "error", rmErr)
			}
		}
		return err
	}
	return nil
}

// List returns the employees matching the query and the total match count.
// The count is computed over the same filter as the returned set.
func (u *EmployeeUsecase) List(ctx context.Context, q ListQuery) ([]entity.Employee, int64, error) {
	return u.repo.List(ctx, q)
}

// Update overwrites every mutable field of an existing record.
// Existence is an explicit precondition: a missing ID yields ErrEmployeeNotFound.
// The image is replaced only when a new file is supplied; the previous file is
// left on disk (the record holds a weak filename reference, no cascading delete).
func (u *EmployeeUsecase) Update(ctx context.Context, id uint, in EmployeeInput, image *multipart.FileHeader) error {
	emp, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	emp.Name = in.Name
	emp.Email = in.Email
	emp.Mobile = in.Mobile
	emp.Designation = in.Designation
	emp.Gender = in.Gender
	emp.Course = in.Course

	if image != nil {
		filename, err := u.storage.Save(image)
		if err != nil {
			return err
		}
		emp.Image = filename
	}

	return u.repo.Update(ctx, emp)
}

// Delete removes the employee with the given ID.
// A missing ID is treated as success; the image file is not deleted.
func (u *EmployeeUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
