package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"k8s.io/utils/clock"

	"bankist/internal/config"
	"bankist/internal/handlers"
	"bankist/internal/logger"
	"bankist/internal/middleware"
	"bankist/internal/services"
	"bankist/internal/session"
	"bankist/internal/validator"

	_ "bankist/internal/docs" // Import swagger docs
)

func newServeCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the bank over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			appConfig := cfg()
			logger.Init(appConfig.Env)
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, appConfig)
		},
	}
}

func serve(ctx context.Context, appConfig *config.Config) error {
	log := logger.Get()

	clk := clock.RealClock{}
	b, err := newBank(appConfig, clk)
	if err != nil {
		return err
	}

	loop := session.NewLoop(b.controller, clk)
	loopCtx, cancelLoop := context.WithCancel(context.Background())
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		_ = loop.Run(loopCtx)
	}()
	defer func() {
		cancelLoop()
		<-loopDone
	}()

	bankService := services.NewBankService(loop, b.screen)
	bankHandler := handlers.NewBankHandler(bankService)

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.POST("/login", bankHandler.Login)
	v1.POST("/logout", bankHandler.Logout)
	v1.POST("/transfer", bankHandler.Transfer)
	v1.POST("/loan", bankHandler.Loan)
	v1.POST("/close", bankHandler.Close)
	v1.POST("/sort", bankHandler.Sort)
	v1.GET("/screen", bankHandler.GetScreen)
	v1.GET("/movements", bankHandler.GetMovements)
	v1.GET("/loans", bankHandler.GetPendingLoans)
	v1.GET("/loans/:id", bankHandler.GetPendingLoan)

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Bankist server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
