package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/headhr-blip/worknest/internal/compensation"
	"github.com/headhr-blip/worknest/internal/document"
	"github.com/headhr-blip/worknest/internal/events"
	"github.com/headhr-blip/worknest/internal/messaging/kafka"
	"github.com/headhr-blip/worknest/internal/messaging/kafka/consumer"
	"github.com/headhr-blip/worknest/internal/payroll"
	"github.com/headhr-blip/worknest/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer starts the Kafka consumers: compensation seeding on employee
// creation and payslip generation on payroll processing.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	cloudinaryURL := os.Getenv("CLOUDINARY_URL")
	if cloudinaryURL == "" {
		return fmt.Errorf("CLOUDINARY_URL is required for payslip generation")
	}
	uploader, err := document.NewCloudinaryUploader(cloudinaryURL, "worknest")
	if err != nil {
		return err
	}

	compensationRepo := compensation.NewRepository(gormDB)
	compensationService := compensation.NewService(sqlDB, compensationRepo)

	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	payrollRepo := payroll.NewRepository(gormDB)
	payrollService := payroll.NewService(sqlDB, payrollRepo, compensationRepo, outboxRepo, uploader)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	employeeConsumer := compensation.NewEmployeeCreatedConsumer(
		kafkaBroker,
		"worknest-compensation",
		compensationService,
		logger,
	)
	defer employeeConsumer.Close()
	employeeConsumer.Start(ctx)

	payslipReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{kafkaBroker},
		Topic:       events.PayrollLifecycleTopic,
		GroupID:     "worknest-payroll-payslip",
		StartOffset: kafkago.FirstOffset,
	})
	defer payslipReader.Close()

	go consumer.ConsumePayrollProcessed(ctx, payslipReader, payrollService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
