// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"employee_backend/internal/feature/auth/domain/entity"
	"employee_backend/internal/feature/auth/usecase"
)

// credentialMySQL はCredentialRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type credentialMySQL struct {
	db *gorm.DB
}

// credentialMySQLがCredentialRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CredentialRepository = (*credentialMySQL)(nil)

// NewCredentialMySQL は指定されたgorm.DB接続でcredentialMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewCredentialMySQL(db *gorm.DB) *credentialMySQL {
	return &credentialMySQL{db: db}
}

// Create はクレデンシャルをデータベースに追加します。
func (r *credentialMySQL) Create(ctx context.Context, cred *entity.Credential) error {
	return r.db.WithContext(ctx).Create(cred).Error
}

// FindByUsername はユーザー名でクレデンシャルを取得します。
// クレデンシャルが存在しない場合、usecase.ErrCredentialNotFoundを返します。
func (r *credentialMySQL) FindByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	var cred entity.Credential
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&cred).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCredentialNotFound
		}
		return nil, err
	}
	return &cred, nil
}
