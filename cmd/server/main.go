// Command server runs the dhaba API: multi-tenant restaurant ordering with
// GST-aware billing.
package main

import (
	"fmt"
	"log"

	"dhaba/internal/config"
	"dhaba/internal/email/noop"
	"dhaba/internal/email/ses"
	"dhaba/internal/handler"
	"dhaba/internal/port"
	"dhaba/internal/repository/postgres"
	"dhaba/internal/router"
	"dhaba/internal/service"
	s3storage "dhaba/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	tenantRepo := postgres.NewTenantRepo(db)
	userRepo := postgres.NewUserRepo(db)
	menuRepo := postgres.NewMenuRepo(db)
	tableRepo := postgres.NewTableRepo(db)
	orderRepo := postgres.NewOrderRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, tenantRepo, cfg.JWT)
	tenantSvc := service.NewTenantService(tenantRepo)
	userSvc := service.NewUserService(userRepo)
	menuSvc := service.NewMenuService(menuRepo, s3Client, &cfg.S3)
	tableSvc := service.NewTableService(tableRepo)
	orderSvc := service.NewOrderService(orderRepo, tableRepo, menuRepo)
	invoiceSvc := service.NewInvoiceService(orderRepo, tableRepo, menuRepo, tenantRepo)
	reportSvc := service.NewReportService(orderRepo, tenantRepo, emailSender)

	// Initialize handlers
	h := router.Handlers{
		Auth:    handler.NewAuthHandler(authSvc, userSvc),
		Tenant:  handler.NewTenantHandler(tenantSvc),
		User:    handler.NewUserHandler(userSvc),
		Menu:    handler.NewMenuHandler(menuSvc),
		Table:   handler.NewTableHandler(tableSvc),
		Order:   handler.NewOrderHandler(orderSvc),
		Invoice: handler.NewInvoiceHandler(invoiceSvc),
		Report:  handler.NewReportHandler(reportSvc, tenantSvc),
		Health:  handler.NewHealthHandler(db),
	}

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, h)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
