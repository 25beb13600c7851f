// Package dto はemployeeフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// EmployeeForm は/employeeエンドポイントのmultipartフォームフィールドを表します。
// 全フィールド必須。Courseはワイヤ上ではJSONエンコードされた文字列配列で、
// 作成・更新の両パスで同一のエンコーディングを使用します。
type EmployeeForm struct {
	Name        string `form:"name" binding:"required"`
	Email       string `form:"email" binding:"required"`
	Mobile      string `form:"mobile" binding:"required"`
	Designation string `form:"designation" binding:"required"`
	Gender      string `form:"gender" binding:"required"`
	Course      string `form:"course" binding:"required"`
}
