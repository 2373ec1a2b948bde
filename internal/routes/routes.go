package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/feliperamosdev/portfolio-api/internal/audit"
	"github.com/feliperamosdev/portfolio-api/internal/billing"
	"github.com/feliperamosdev/portfolio-api/internal/cache"
	"github.com/feliperamosdev/portfolio-api/internal/config"
	"github.com/feliperamosdev/portfolio-api/internal/contract"
	"github.com/feliperamosdev/portfolio-api/internal/handlers"
	infraRepo "github.com/feliperamosdev/portfolio-api/internal/infra/repository"
	"github.com/feliperamosdev/portfolio-api/internal/middleware"
	"github.com/feliperamosdev/portfolio-api/internal/storage"
	ucCheckout "github.com/feliperamosdev/portfolio-api/internal/usecase/checkout"
	ucProposal "github.com/feliperamosdev/portfolio-api/internal/usecase/proposal"
	ucUser "github.com/feliperamosdev/portfolio-api/internal/usecase/user"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	proposalRepo := infraRepo.NewProposalGormRepository(db)
	checkoutRepo := infraRepo.NewCheckoutGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	proposalCache := cache.NewProposalCache(cfg)
	gateway := billing.NewClient(cfg)
	mediaStorage := storage.NewMediaStorage(cfg)

	contractGenerator := contract.NewGenerator(contract.NewDefaults(cfg))

	// ======================================================
	// USE CASES — PROPOSALS
	// ======================================================
	createProposalUC := ucProposal.NewCreateProposal(
		proposalRepo,
		proposalCache,
		auditDispatcher,
	)

	updateProposalUC := ucProposal.NewUpdateProposal(
		proposalRepo,
		proposalCache,
		auditDispatcher,
	)

	listProposalsUC := ucProposal.NewListProposals(proposalRepo)

	checkSlugUC := ucProposal.NewCheckSlugAvailability(proposalRepo)

	getPublicProposalUC := ucProposal.NewGetPublicProposal(
		proposalRepo,
		proposalCache,
	)

	acceptProposalUC := ucProposal.NewAcceptProposal(
		proposalRepo,
		contractGenerator,
		auditDispatcher,
	)

	// ======================================================
	// USE CASES — CHECKOUTS
	// ======================================================
	createCheckoutUC := ucCheckout.NewCreateCheckout(
		checkoutRepo,
		auditDispatcher,
	)

	listCheckoutsUC := ucCheckout.NewListCheckouts(checkoutRepo)

	getCheckoutByLinkUC := ucCheckout.NewGetCheckoutByLink(checkoutRepo)

	selectPaymentUC := ucCheckout.NewSelectPaymentMethod(
		checkoutRepo,
		gateway,
		auditDispatcher,
	)

	confirmPaymentUC := ucCheckout.NewConfirmPayment(
		checkoutRepo,
		auditDispatcher,
	)

	cancelCheckoutUC := ucCheckout.NewCancelCheckout(
		checkoutRepo,
		gateway,
		auditDispatcher,
	)

	reconcileCheckoutUC := ucCheckout.NewReconcileCheckout(
		checkoutRepo,
		gateway,
		auditDispatcher,
	)

	// ======================================================
	// USE CASES — USERS
	// ======================================================
	provisionUserUC := ucUser.NewProvisionUser(userRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	userHandler := handlers.NewUserHandler(provisionUserUC)

	proposalHandler := handlers.NewProposalHandler(
		createProposalUC,
		updateProposalUC,
		listProposalsUC,
		checkSlugUC,
	)

	checkoutHandler := handlers.NewCheckoutHandler(
		createCheckoutUC,
		listCheckoutsUC,
		cancelCheckoutUC,
		reconcileCheckoutUC,
	)

	publicHandler := handlers.NewPublicHandler(
		db,
		getPublicProposalUC,
		acceptProposalUC,
		getCheckoutByLinkUC,
		selectPaymentUC,
	)

	webhookHandler := handlers.NewWebhookHandler(cfg, confirmPaymentUC)

	projectHandler := handlers.NewProjectHandler(db, auditDispatcher)
	postHandler := handlers.NewPostHandler(db, auditDispatcher)
	resumeHandler := handlers.NewResumeHandler(db, auditDispatcher)
	mediaHandler := handlers.NewMediaHandler(mediaStorage, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/projects", publicHandler.ListProjects)
			publicAPI.GET("/posts", publicHandler.ListPosts)
			publicAPI.GET("/posts/:slug", publicHandler.GetPost)
			publicAPI.GET("/resume", publicHandler.GetResume)

			publicAPI.GET("/proposals/:slug", publicHandler.GetProposal)
			publicAPI.POST("/proposals/:slug/accept", publicHandler.AcceptProposal)

			publicAPI.GET("/checkouts/:link", publicHandler.GetCheckout)
			publicAPI.POST("/checkouts/:link/payment-method", publicHandler.SelectPayment)
		}

		// ------------------------------
		// WEBHOOKS
		// ------------------------------
		api.POST("/webhooks/billing", webhookHandler.HandleBilling)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.Get)

			// ------------------------------
			// PROPOSALS
			// ------------------------------
			proposals := secured.Group("/me/proposals")
			proposals.Use(middleware.RequireRoles(
				ucUser.RoleRoot,
				ucUser.RoleAdmin,
				ucUser.RoleProposalEditor,
			))
			{
				proposals.GET("", proposalHandler.List)
				proposals.POST("", proposalHandler.Create)
				proposals.PUT("/:id", proposalHandler.Update)
				proposals.GET("/slug-availability", proposalHandler.CheckSlug)
			}

			// ------------------------------
			// CHECKOUTS
			// ------------------------------
			checkouts := secured.Group("/me/checkouts")
			checkouts.Use(middleware.RequireRoles(ucUser.RoleRoot, ucUser.RoleAdmin))
			{
				checkouts.GET("", checkoutHandler.List)
				checkouts.POST("", checkoutHandler.Create)
				checkouts.PATCH("/:id/cancel", checkoutHandler.Cancel)
				checkouts.PATCH("/:id/reconcile", checkoutHandler.Reconcile)
			}

			// ------------------------------
			// CMS
			// ------------------------------
			cms := secured.Group("/me")
			cms.Use(middleware.RequireRoles(ucUser.RoleRoot, ucUser.RoleAdmin))
			{
				cms.GET("/projects", projectHandler.List)
				cms.POST("/projects", projectHandler.Create)
				cms.PUT("/projects/:id", projectHandler.Update)
				cms.DELETE("/projects/:id", projectHandler.Delete)

				cms.GET("/posts", postHandler.List)
				cms.POST("/posts", postHandler.Create)
				cms.PUT("/posts/:id", postHandler.Update)
				cms.DELETE("/posts/:id", postHandler.Delete)

				cms.GET("/resume", resumeHandler.List)
				cms.POST("/resume", resumeHandler.Create)
				cms.PUT("/resume/:id", resumeHandler.Update)
				cms.DELETE("/resume/:id", resumeHandler.Delete)

				cms.POST("/media", mediaHandler.Upload)

				cms.GET("/audit-logs", auditLogsHandler.List)
			}

			// ------------------------------
			// USERS (somente root)
			// ------------------------------
			users := secured.Group("/me/users")
			users.Use(middleware.RequireRoles(ucUser.RoleRoot))
			{
				users.POST("", userHandler.Provision)
			}
		}
	}
}
