package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"employee_backend/internal/app/router"
	authadapters "employee_backend/internal/feature/auth/adapters"
	authhandler "employee_backend/internal/feature/auth/transport/handler"
	authusecase "employee_backend/internal/feature/auth/usecase"
	employeeadapters "employee_backend/internal/feature/employee/adapters"
	employeehandler "employee_backend/internal/feature/employee/transport/handler"
	employeeusecase "employee_backend/internal/feature/employee/usecase"
	infradb "employee_backend/internal/infrastructure/db"
	"employee_backend/internal/platform/config"
	"employee_backend/internal/platform/upload"
)

func main() {
	cfg := config.Load()

	// db（serve開始前に初期化。ハンドラはグローバルではなく注入された接続を使う）
	db, err := infradb.OpenDB(cfg.DB)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	// 画像ストレージ
	storage, err := upload.NewDiskStorage(cfg.UploadDir)
	if err != nil {
		log.Fatalf("failed to init upload storage: %v", err)
	}

	// Repository
	credRepo := authadapters.NewCredentialMySQL(db)
	employeeRepo := employeeadapters.NewEmployeeMySQL(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(credRepo)
	employeeUC := employeeusecase.NewEmployeeUsecase(employeeRepo, storage)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	employeeH := employeehandler.NewEmployeeHandler(employeeUC)

	// ルータ生成
	r := router.NewRouter(authH, employeeH, storage.Dir(), cfg.CORSAllowOrigin)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on :%s", cfg.Port)

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := infradb.Close(db); err != nil {
		log.Printf("failed to close database: %v", err)
	}
}
