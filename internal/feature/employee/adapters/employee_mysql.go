// Package adapters はemployeeフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"employee_backend/internal/feature/employee/domain/entity"
	"employee_backend/internal/feature/employee/usecase"
)

// sortColumns はソート可能なフィールド名からカラム名へのホワイトリストです。
// 未知のフィールド名はデフォルト（name）にフォールバックし、
// 任意文字列がORDER BY句に到達しないことを保証します。
var sortColumns = map[string]string{
	"name":        "name",
	"email":       "email",
	"mobile":      "mobile",
	"designation": "designation",
	"gender":      "gender",
	"createdAt":   "created_at",
	"id":          "id",
}

// employeeMySQL はEmployeeRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type employeeMySQL struct {
	db *gorm.DB
}

// employeeMySQLがEmployeeRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.EmployeeRepository = (*employeeMySQL)(nil)

// NewEmployeeMySQL は指定されたgorm.DB接続でemployeeMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewEmployeeMySQL(db *gorm.DB) *employeeMySQL {
	return &employeeMySQL{db: db}
}

// translateDuplicate はドライバのユニークキー重複エラーをドメインエラーに変換します。
// メール一意性の唯一の根拠はemailカラムのユニークインデックスです。
func translateDuplicate(err error) error {
	// MySQLエラー1062: ユニークキーの重複エントリ
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return usecase.ErrDuplicateEmail
	}
	// TranslateError有効時（SQLiteテスト含む）はgorm.ErrDuplicatedKeyに正規化される
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return usecase.ErrDuplicateEmail
	}
	return err
}

// Create は従業員レコードをデータベースに追加します。
// 同じメールアドレスのレコードが既に存在する場合、usecase.ErrDuplicateEmailを返します。
func (r *employeeMySQL) Create(ctx context.Context, emp *entity.Employee) error {
	if err := r.db.WithContext(ctx).Create(emp).Error; err != nil {
		return translateDuplicate(err)
	}
	return nil
}

// FindByID はIDで従業員レコードを取得します。
// レコードが存在しない場合、usecase.ErrEmployeeNotFoundを返します。
func (r *employeeMySQL) FindByID(ctx context.Context, id uint) (*entity.Employee, error) {
	var emp entity.Employee
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// Update は従業員レコードの全フィールドを上書き保存します。
// 変更後のメールアドレスが他レコードと衝突する場合、usecase.ErrDuplicateEmailを返します。
func (r *employeeMySQL) Update(ctx context.Context, emp *entity.Employee) error {
	if err := r.db.WithContext(ctx).Save(emp).Error; err != nil {
		return translateDuplicate(err)
	}
	return nil
}

// Delete はIDで従業員レコードを削除します。
// レコードが存在しない場合もエラーとせず、何もしません。
func (r *employeeMySQL) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Employee{}, id).Error
}

// List は検索条件に一致する従業員レコードと総件数を返します。
// 検索語はnameまたはemailに対する大文字小文字を区別しない部分一致です。
// 件数は返却セットと同一のフィルタで計算されます（ページネーションなし）。
func (r *employeeMySQL) List(ctx context.Context, q usecase.ListQuery) ([]entity.Employee, int64, error) {
	var employees []entity.Employee
	if err := r.search(ctx, q.SearchTerm).
		Order(orderClause(q.SortField, q.SortOrder)).
		Find(&employees).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.search(ctx, q.SearchTerm).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// search は検索語を適用したクエリビルダを返します。
func (r *employeeMySQL) search(ctx context.Context, term string) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&entity.Employee{})
	if term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}
	return tx
}

// orderClause はホワイトリスト検証済みのORDER BY句を組み立てます。
func orderClause(field, order string) string {
	column, ok := sortColumns[field]
	if !ok {
		column = "name"
	}
	dir := "ASC"
	if strings.EqualFold(order, "desc") {
		dir = "DESC"
	}
	return column + " " + dir
}
