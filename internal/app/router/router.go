package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "employee_backend/internal/feature/auth/transport/handler"
	employeehandler "employee_backend/internal/feature/employee/transport/handler"
	platformhandler "employee_backend/internal/platform/http/handler"
)

// NewRouter は全エンドポイントのルーティングを構築します。
// フロントエンドは別オリジンのSPAのため、CORSをグローバルに適用します。
func NewRouter(auth *authhandler.AuthHandler, employee *employeehandler.EmployeeHandler,
	uploadDir, corsOrigin string) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if corsOrigin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{corsOrigin}
	}
	r.Use(cors.New(corsCfg))

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)

	// 認証。セッションやトークンは発行しない（ログインは一回限りの真偽判定）
	r.POST("/login", auth.Login)
	r.POST("/register", auth.Register)

	// 従業員ディレクトリ
	r.POST("/employee", employee.Create)
	r.GET("/employees", employee.List)
	r.PUT("/employee/:id", employee.Update)
	r.DELETE("/employee/:id", employee.Delete)

	// アップロード画像の静的配信
	r.Static("/uploads", uploadDir)

	return r
}
