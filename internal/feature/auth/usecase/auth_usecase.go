// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"employee_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// CredentialRepository はクレデンシャルエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type CredentialRepository interface {
	// Create は新しいクレデンシャルをストレージに永続化します。
	Create(ctx context.Context, cred *entity.Credential) error

	// FindByUsername は指定されたユーザー名に一致するクレデンシャルを取得します。
	// クレデンシャルが存在しない場合、ErrCredentialNotFoundを返します。
	FindByUsername(ctx context.Context, username string) (*entity.Credential, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	creds CredentialRepository
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(creds CredentialRepository) *authUsecase {
	return &authUsecase{creds: creds}
}

// Register はパスワードをbcryptでハッシュ化し、新しいクレデンシャルを無条件に挿入します。
// ユーザー名の重複チェックは行いません（ブートストラップ/テスト用途の登録パス）。
func (u *authUsecase) Register(ctx context.Context, username, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	cred := &entity.Credential{Username: username, PasswordHash: string(hashed)}
	return u.creds.Create(ctx, cred)
}

// Login はユーザー名とパスワードを検証し、一致したかどうかを返します。
// ユーザー未検出とパスワード不一致は区別せずfalseを返します（ユーザー名列挙の防止）。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, username, password string) (bool, error) {
	cred, err := u.creds.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, ErrCredentialNotFound) {
		return false, err
	}

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = cred.PasswordHash
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	return err == nil && compareErr == nil, nil
}
