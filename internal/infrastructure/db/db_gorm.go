// Package db はGORMによるデータベース接続の初期化と終了処理を提供します。
package db

import (
	"fmt"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	authentity "employee_backend/internal/feature/auth/domain/entity"
	employeeentity "employee_backend/internal/feature/employee/domain/entity"
	"employee_backend/internal/platform/config"
)

// OpenDB は設定からMySQL接続を初期化し、マイグレーションを実行します。
// TranslateErrorを有効にし、ドライバ固有の重複キーエラーをgormのエラーに正規化します。
// 接続はプロセス起動時に一度だけ確立し、各コンポーネントへ注入します。
func OpenDB(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)

	db, err := gorm.Open(gmysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// マイグレーション（Credential, Employee）
	if err := db.AutoMigrate(
		&authentity.Credential{},
		&employeeentity.Employee{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return db, nil
}

// Close は基盤となるsql.DBハンドルを閉じます。graceful shutdown時のteardownで呼びます。
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
