package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vatplatform_backend/internals/constants"
	auditController "vatplatform_backend/internals/features/audit/audit_log/controller"
	docController "vatplatform_backend/internals/features/documents/document/controller"
	docService "vatplatform_backend/internals/features/documents/document/service"
	paymentController "vatplatform_backend/internals/features/payments/payment/controller"
	paymentService "vatplatform_backend/internals/features/payments/payment/service"
	reportController "vatplatform_backend/internals/features/reports/report/controller"
	reportService "vatplatform_backend/internals/features/reports/report/service"
	ticketController "vatplatform_backend/internals/features/support/ticket/controller"
	userController "vatplatform_backend/internals/features/users/user/controller"
	authMiddleware "vatplatform_backend/internals/middlewares/auth"
)

// UserRoutes mounts everything under /api/v1/users: user management,
// documents, reports, payments, credits, audit logs and support tickets.
// Every route requires a session token; role lists guard each group.
func UserRoutes(app *fiber.App, db *gorm.DB,
	verifier paymentService.Verifier,
	extractor *docService.Extractor,
	renderer *reportService.Renderer,
) {
	users := app.Group("/api/v1/users", authMiddleware.AuthMiddleware())

	userCtl := userController.NewUserController(db)
	users.Post("/",
		authMiddleware.OnlyRoles(constants.RoleError("create users"), constants.UserManagers...),
		userCtl.Create)
	users.Get("/",
		authMiddleware.OnlyRoles(constants.RoleError("list users"), constants.UserManagers...),
		userCtl.List)

	docCtl := docController.NewDocumentController(db, extractor)
	users.Post("/documents",
		authMiddleware.OnlyRoles(constants.RoleError("upload documents"), constants.DocumentRoles...),
		docCtl.Upload)
	users.Get("/documents",
		authMiddleware.OnlyRoles(constants.RoleError("list documents"), constants.DocumentRoles...),
		docCtl.List)

	reportCtl := reportController.NewReportController(db, renderer)
	users.Post("/reports",
		authMiddleware.OnlyRoles(constants.RoleError("generate reports"), constants.ReportRoles...),
		reportCtl.Generate)
	users.Get("/reports",
		authMiddleware.OnlyRoles(constants.RoleError("view reports"), constants.ReportRoles...),
		reportCtl.History)
	users.Get("/reports/:id/preview",
		authMiddleware.OnlyRoles(constants.RoleError("view reports"), constants.ReportRoles...),
		reportCtl.Preview)
	users.Put("/reports/:id",
		authMiddleware.OnlyRoles(constants.RoleError("edit reports"), constants.ReportRoles...),
		reportCtl.Edit)
	users.Get("/reports/:id/download",
		authMiddleware.OnlyRoles(constants.RoleError("download reports"), constants.ReportRoles...),
		reportCtl.Download)

	paymentCtl := paymentController.NewPaymentController(db, verifier)
	users.Post("/payments",
		authMiddleware.OnlyRoles(constants.RoleError("create payments"), constants.PaymentCreators...),
		paymentCtl.Create)
	users.Get("/payments",
		authMiddleware.OnlyRoles(constants.RoleError("view payments"), constants.PaymentViewers...),
		paymentCtl.List)
	users.Post("/credits/topup",
		authMiddleware.OnlyRoles(constants.RoleError("top up credits"), constants.CreditRoles...),
		paymentCtl.TopUp)

	auditCtl := auditController.NewAuditLogController(db)
	users.Get("/audit-logs", auditCtl.List)

	ticketCtl := ticketController.NewTicketController(db)
	users.Post("/support-tickets",
		authMiddleware.OnlyRoles(constants.RoleError("open tickets"), constants.TicketRoles...),
		ticketCtl.Create)
	users.Get("/support-tickets",
		authMiddleware.OnlyRoles(constants.RoleError("view tickets"), constants.TicketRoles...),
		ticketCtl.List)

	// Parameterized user routes come last so static prefixes match first.
	users.Get("/:id",
		authMiddleware.OnlyRoles(constants.RoleError("view users"), constants.AllRoles...),
		userCtl.GetByID)
	users.Put("/:id",
		authMiddleware.OnlyRoles(constants.RoleError("update users"), constants.UserUpdaters...),
		userCtl.Update)
	users.Delete("/:id",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("delete users"), constants.SuperAdminOnly...),
		userCtl.Delete)
}
