package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"performup_api/internal/handlers"
	appMiddleware "performup_api/internal/middleware"
	"performup_api/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Initialize Firebase
	credPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
	if credPath == "" {
		credPath = "./firebase-service-account.json"
	}

	authClient, err := services.InitFirebase(credPath)
	if err != nil {
		log.Printf("Warning: Firebase initialization failed: %v", err)
		log.Println("Auth features will not work until valid credentials are provided")
	}

	// Initialize Database
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := services.InitDB(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migration
	if err := services.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Initialize Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	cache, err := services.NewRedisCache(redisURL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer cache.Close()

	impersonationSecret := os.Getenv("IMPERSONATION_SECRET")
	if impersonationSecret == "" {
		log.Fatal("IMPERSONATION_SECRET not set")
	}

	// Initialize services
	emailService := services.NewEmailService()
	auditService := services.NewAuditService(db)
	allocationService := services.NewAllocationService(db)
	missionService := services.NewMissionService(db)
	quoteService := services.NewQuoteService(db, emailService)
	impersonationService := services.NewImpersonationService(db, auditService, impersonationSecret)
	midtransService := services.NewMidtransService()
	gatewayService := services.NewGatewayService(db, midtransService, allocationService)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = appMiddleware.JSONErrorHandler

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authClient)
	dashboardHandler := handlers.NewDashboardHandler(db, cache)
	studentHandler := handlers.NewStudentHandler(db)
	mentorHandler := handlers.NewMentorHandler(db)
	professorHandler := handlers.NewProfessorHandler(db)
	schoolHandler := handlers.NewSchoolHandler(db)
	packHandler := handlers.NewPackHandler(db)
	taskHandler := handlers.NewTaskHandler(db)
	documentHandler := handlers.NewDocumentHandler(db)
	quoteHandler := handlers.NewQuoteHandler(db, quoteService)
	missionHandler := handlers.NewMissionHandler(db, missionService)
	paymentHandler := handlers.NewPaymentHandler(db, allocationService)
	scheduleHandler := handlers.NewScheduleHandler(db, gatewayService)
	impersonationHandler := handlers.NewImpersonationHandler(db, impersonationService)
	userHandler := handlers.NewUserHandler(db, auditService)
	auditHandler := handlers.NewAuditHandler(db)

	// Public routes
	e.POST("/auth/login", authHandler.HandleLogin)
	e.POST("/auth/logout", authHandler.HandleLogout)
	e.POST("/payments/midtrans/callback", scheduleHandler.GatewayCallback)

	// Protected routes
	protected := e.Group("")
	protected.Use(appMiddleware.RequireAuth(authClient, db, impersonationService))

	// Staff routes (admins and student managers)
	staff := protected.Group("")
	staff.Use(appMiddleware.RequireStudentManager())

	staff.GET("/dashboard", dashboardHandler.Summary)

	staff.GET("/students", studentHandler.ListStudents)
	staff.POST("/students", studentHandler.CreateStudent)
	staff.GET("/students/:id", studentHandler.GetStudent)
	staff.PUT("/students/:id", studentHandler.UpdateStudent)
	staff.DELETE("/students/:id", studentHandler.DeleteStudent)

	staff.GET("/mentors", mentorHandler.ListMentors)
	staff.POST("/mentors", mentorHandler.CreateMentor)
	staff.GET("/mentors/:id", mentorHandler.GetMentor)
	staff.DELETE("/mentors/:id", mentorHandler.DeleteMentor)

	staff.GET("/professors", professorHandler.ListProfessors)
	staff.POST("/professors", professorHandler.CreateProfessor)
	staff.GET("/professors/:id", professorHandler.GetProfessor)
	staff.DELETE("/professors/:id", professorHandler.DeleteProfessor)

	staff.GET("/schools", schoolHandler.ListSchools)
	staff.POST("/schools", schoolHandler.CreateSchool)
	staff.GET("/schools/:id", schoolHandler.GetSchool)
	staff.DELETE("/schools/:id", schoolHandler.DeleteSchool)
	staff.POST("/schools/:id/programs", schoolHandler.CreateProgram)

	staff.GET("/packs", packHandler.ListPacks)
	staff.POST("/packs", packHandler.CreatePack)
	staff.POST("/packs/:id/retire", packHandler.RetirePack)

	staff.GET("/tasks", taskHandler.ListTasks)
	staff.POST("/tasks", taskHandler.CreateTask)
	staff.PUT("/tasks/:id/status", taskHandler.UpdateTaskStatus)
	staff.DELETE("/tasks/:id", taskHandler.DeleteTask)

	staff.GET("/documents", documentHandler.ListDocuments)
	staff.POST("/documents", documentHandler.CreateDocument)
	staff.DELETE("/documents/:id", documentHandler.DeleteDocument)

	staff.GET("/quotes", quoteHandler.ListQuotes)
	staff.POST("/quotes", quoteHandler.CreateQuote)
	staff.GET("/quotes/:id", quoteHandler.GetQuote)
	staff.POST("/quotes/:id/send", quoteHandler.SendQuote)

	staff.GET("/missions", missionHandler.ListMissions)
	staff.POST("/missions", missionHandler.CreateMission)

	staff.GET("/payments", paymentHandler.ListPayments)
	staff.POST("/payments", paymentHandler.CreatePayment)
	staff.GET("/payments/:id", paymentHandler.GetPayment)
	staff.GET("/payments/:id/allocations/suggest", paymentHandler.SuggestAllocations)
	staff.POST("/payments/:id/allocations", paymentHandler.ApplyAllocations)

	staff.GET("/bank-accounts", paymentHandler.ListBankAccounts)
	staff.POST("/bank-accounts", paymentHandler.CreateBankAccount)

	staff.GET("/schedules", scheduleHandler.ListSchedules)
	staff.POST("/schedules", scheduleHandler.CreateSchedule)
	staff.POST("/schedules/:id/cancel", scheduleHandler.CancelSchedule)

	// Students pay their own schedules; ownership is checked in the handler
	protected.POST("/schedules/:id/pay", scheduleHandler.InitiateCheckout)

	admin := protected.Group("/admin")
	admin.Use(appMiddleware.RequireAdmin())
	admin.POST("/quotes/:id/validate", quoteHandler.ValidateQuote)
	admin.POST("/quotes/:id/reject", quoteHandler.RejectQuote)
	admin.POST("/missions/:id/validate", missionHandler.ValidateMission)
	admin.POST("/missions/:id/reject", missionHandler.RejectMission)
	admin.GET("/users", userHandler.ListUsers)
	admin.PUT("/users/:id/role", userHandler.UpdateUserRole)
	admin.POST("/users/:id/deactivate", userHandler.DeactivateUser)
	admin.GET("/audit-logs", auditHandler.ListAuditLogs)
	admin.POST("/impersonate", impersonationHandler.StartImpersonation)

	// Ending impersonation must work while the identity is swapped to the
	// target, so no admin check here; the handler verifies the token owner
	protected.POST("/admin/impersonate/end", impersonationHandler.EndImpersonation)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
