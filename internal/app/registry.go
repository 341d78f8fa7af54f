package app

import (
	"database/sql"
	"os"

	"github.com/headhr-blip/worknest/internal/approval"
	"github.com/headhr-blip/worknest/internal/attendance"
	"github.com/headhr-blip/worknest/internal/auth"
	"github.com/headhr-blip/worknest/internal/branch"
	"github.com/headhr-blip/worknest/internal/compensation"
	"github.com/headhr-blip/worknest/internal/document"
	"github.com/headhr-blip/worknest/internal/employee"
	"github.com/headhr-blip/worknest/internal/expense"
	"github.com/headhr-blip/worknest/internal/leave"
	"github.com/headhr-blip/worknest/internal/loan"
	"github.com/headhr-blip/worknest/internal/messaging/kafka"
	"github.com/headhr-blip/worknest/internal/middleware"
	"github.com/headhr-blip/worknest/internal/payroll"
	"github.com/headhr-blip/worknest/internal/rbac"
	"github.com/headhr-blip/worknest/internal/rbac/infra"
	"github.com/headhr-blip/worknest/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	branchRepo := branch.NewRepository(gormDB)
	compensationRepo := compensation.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	expenseRepo := expense.NewRepository(gormDB)
	loanRepo := loan.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	documentRepo := document.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// Payslips and documents share the same object store.
	var uploader document.Uploader
	if cloudinaryURL := os.Getenv("CLOUDINARY_URL"); cloudinaryURL != "" {
		uploader, err = document.NewCloudinaryUploader(cloudinaryURL, "worknest")
		if err != nil {
			return err
		}
	} else {
		zap.L().Warn("CLOUDINARY_URL not set, file uploads disabled")
	}

	// --- Services ---
	authService := auth.NewService(authRepo, rbacService)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, outboxRepo)
	branchService := branch.NewService(branchRepo, rdb)
	compensationService := compensation.NewService(db, compensationRepo)
	attendanceService := attendance.NewService(attendanceRepo)
	leaveService := leave.NewService(db, leaveRepo)
	expenseService := expense.NewService(db, expenseRepo)
	loanService := loan.NewService(db, loanRepo)
	approvalService := approval.NewService(map[approval.Kind]approval.Store{
		approval.KindLeave:   leaveRepo,
		approval.KindExpense: expenseRepo,
		approval.KindLoan:    loanRepo,
	}, outboxRepo)
	payrollService := payroll.NewService(db, payrollRepo, compensationRepo, outboxRepo, uploader)
	documentService := document.NewService(documentRepo, uploader)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	branchHandler := branch.NewHandler(branchService)
	compensationHandler := compensation.NewHandler(compensationService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	leaveHandler := leave.NewHandler(leaveService)
	expenseHandler := expense.NewHandler(expenseService)
	loanHandler := loan.NewHandler(loanService)
	approvalHandler := approval.NewHandler(approvalService)
	payrollHandler := payroll.NewHandler(payrollService)
	documentHandler := document.NewHandler(documentService)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		branch.RegisterRoutes(api, branchHandler, rbacService)
		compensation.RegisterRoutes(api, compensationHandler, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService)
		expense.RegisterRoutes(api, expenseHandler, rbacService)
		loan.RegisterRoutes(api, loanHandler, rbacService)
		approval.RegisterRoutes(api, approvalHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		document.RegisterRoutes(api, documentHandler, rbacService)
		rbac.RegisterRoutes(api, rbacHandler, rbacService)
	}

	return nil
}
