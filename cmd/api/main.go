package main

import (
	"fmt"
	"net/http"

	"github.com/shiftlog/timeclock-backend-go/internal/config"
	"github.com/shiftlog/timeclock-backend-go/internal/domain/session"
	appHTTP "github.com/shiftlog/timeclock-backend-go/internal/handler/http"
	"github.com/shiftlog/timeclock-backend-go/internal/pkg/database"
	"github.com/shiftlog/timeclock-backend-go/internal/pkg/jwt"
	"github.com/shiftlog/timeclock-backend-go/internal/repository/postgresql"
	authService "github.com/shiftlog/timeclock-backend-go/internal/service/auth"
	breakService "github.com/shiftlog/timeclock-backend-go/internal/service/breaks"
	reportService "github.com/shiftlog/timeclock-backend-go/internal/service/report"
	sessionService "github.com/shiftlog/timeclock-backend-go/internal/service/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	sessionRepo := postgresql.NewSessionRepository(db)
	breakQuotaRepo := postgresql.NewBreakQuotaRepository(db)
	memberRepo := postgresql.NewMemberRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	rules := session.Rules{
		BreakLimitSeconds:    cfg.Timeclock.BreakLimitSeconds,
		ExpectedDailySeconds: cfg.Timeclock.ExpectedDailySeconds,
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authSvc := authService.NewAuthService(memberRepo, JWTService)
	sessionSvc := sessionService.NewSessionService(db, sessionRepo, rules)
	breakSvc := breakService.NewBreakService(db, sessionRepo, breakQuotaRepo, rules)
	reportSvc := reportService.NewReportService(reportRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	timeclockHandler := appHTTP.NewTimeclockHandler(sessionSvc, breakSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
		JWTService,
		authHandler,
		timeclockHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
