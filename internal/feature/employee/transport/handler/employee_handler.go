// Package handler はemployeeフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"employee_backend/internal/feature/employee/domain/entity"
	"employee_backend/internal/feature/employee/transport/http/dto"
	"employee_backend/internal/feature/employee/usecase"
	"employee_backend/internal/platform/upload"
)

// EmployeeUsecase は従業員ディレクトリ操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type EmployeeUsecase interface {
	Create(ctx context.Context, in usecase.EmployeeInput, image *multipart.FileHeader) error
	List(ctx context.Context, q usecase.ListQuery) ([]entity.Employee, int64, error)
	Update(ctx context.Context, id uint, in usecase.EmployeeInput, image *multipart.FileHeader) error
	Delete(ctx context.Context, id uint) error
}

// EmployeeHandler は従業員ディレクトリのHTTPリクエストを処理します。
type EmployeeHandler struct {
	uc EmployeeUsecase
}

// NewEmployeeHandler は新しい EmployeeHandler を作成します。
func NewEmployeeHandler(uc EmployeeUsecase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// parseCourse はワイヤ表現（JSONエンコードされた文字列配列）をコースのタグ集合に変換します。
// 作成・更新の両パスで同一のエンコーディングを使用します。
func parseCourse(raw string) ([]string, error) {
	var course []string
	if err := json.Unmarshal([]byte(raw), &course); err != nil {
		return nil, err
	}
	return course, nil
}

// Create は従業員作成APIエンドポイントを処理します。
// - multipartフォームをEmployeeFormにバインド（全フィールド必須）
// - courseをJSON配列としてパース
// - 画像（JPEG/PNGのみ）は必須。MIME判定はコンテンツスニッフィングで行う
// - メール重複時は409を返し、ステージ済みファイルはユースケース側で削除される
func (h *EmployeeHandler) Create(c *gin.Context) {
	var form dto.EmployeeForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("employee create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
		return
	}

	course, err := parseCourse(form.Course)
	if err != nil {
		slog.Warn("employee create course parse failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid course format"})
		return
	}

	image, err := c.FormFile("image")
	if err != nil {
		slog.Warn("employee create missing image", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Image is required"})
		return
	}

	in := usecase.EmployeeInput{
		Name:        form.Name,
		Email:       form.Email,
		Mobile:      form.Mobile,
		Designation: form.Designation,
		Gender:      form.Gender,
		Course:      course,
	}
	if err := h.uc.Create(c.Request.Context(), in, image); err != nil {
		switch {
		case errors.Is(err, upload.ErrUnsupportedImageType):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Only JPG/PNG images are allowed"})
		case errors.Is(err, usecase.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Email already exists"})
		default:
			slog.Error("employee create failed", "error", err, "email", form.Email)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		}
		return
	}

	slog.Info("employee created", "email", form.Email)
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// List は従業員一覧APIエンドポイントを処理します。
// searchTermはnameまたはemailへの大文字小文字を区別しない部分一致、
// sortField/sortOrderでソート（デフォルト: name昇順）。
// 一致した全レコードと総件数を返します（ページネーションなし）。
func (h *EmployeeHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}

	employees, total, err := h.uc.List(c.Request.Context(), usecase.ListQuery{
		SearchTerm: query.SearchTerm,
		SortField:  query.SortField,
		SortOrder:  query.SortOrder,
	})
	if err != nil {
		slog.Error("employee list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// 結果が空でもnullではなく空配列を返す
	if employees == nil {
		employees = []entity.Employee{}
	}
	c.JSON(http.StatusOK, dto.ListResponse{Employees: employees, TotalCount: total})
}

// Update は従業員更新APIエンドポイントを処理します。
// 存在確認を事前条件とし、レコードがなければ404を返します。
// 画像は新しいファイルが添付された場合のみ置き換えます。
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid employee id"})
		return
	}

	var form dto.EmployeeForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("employee update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	course, err := parseCourse(form.Course)
	if err != nil {
		slog.Warn("employee update course parse failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid course format"})
		return
	}

	// 画像は任意。添付がない場合は既存のファイル名を維持する
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	in := usecase.EmployeeInput{
		Name:        form.Name,
		Email:       form.Email,
		Mobile:      form.Mobile,
		Designation: form.Designation,
		Gender:      form.Gender,
		Course:      course,
	}
	if err := h.uc.Update(c.Request.Context(), uint(id), in, image); err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmployeeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Employee not found"})
		case errors.Is(err, upload.ErrUnsupportedImageType):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Only JPG/PNG images are allowed"})
		case errors.Is(err, usecase.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{"message": "Email already exists"})
		default:
			slog.Error("employee update failed", "error", err, "id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	slog.Info("employee updated", "id", id)
	c.JSON(http.StatusOK, gin.H{"message": "Employee updated successfully"})
}

// Delete は従業員削除APIエンドポイントを処理します。
// レコードが存在しない場合も成功として扱います。
// 画像ファイルは削除しません（レコードはファイル名の弱参照のみを保持）。
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid employee id"})
		return
	}

	if err := h.uc.Delete(c.Request.Context(), uint(id)); err != nil {
		slog.Error("employee delete failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	slog.Info("employee deleted", "id", id)
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}
