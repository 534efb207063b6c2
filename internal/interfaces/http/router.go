package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/davinlab/salonlink-api/internal/application/approval"
	"github.com/davinlab/salonlink-api/internal/application/auth"
	"github.com/davinlab/salonlink-api/internal/application/backup"
	"github.com/davinlab/salonlink-api/internal/application/invitation"
	"github.com/davinlab/salonlink-api/internal/application/report"
	"github.com/davinlab/salonlink-api/internal/application/usecase"
	"github.com/davinlab/salonlink-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	BranchUC      *usecase.BranchUseCase
	CustomerUC    *usecase.CustomerUseCase
	AppointmentUC *usecase.AppointmentUseCase
	StatsUC       *usecase.StatsUseCase
	APIKeyUC      *usecase.APIKeyUseCase
	InvitationUC  *invitation.UseCase
	ApprovalUC    *approval.UseCase
	BackupUC      *backup.UseCase
	ReportUC      *report.UseCase
	JWTSecret     string
}

// Router registers the API routes.
//
// Three rings: public (register/login), authenticated-but-ungated (status,
// menu, own profile), and gated business routes behind RequireApproved. The
// admin subtree additionally requires the HQ role.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	hq := string(entity.RoleHQ)
	owner := string(entity.RoleOwner)

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Authenticated but NOT approval-gated: the pending-approval page needs
	// these to work for users still in the queue.
	authed := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.APIKeyUC, deps.UserUC))
	authed.Get("/auth/status", authHandler.Status)

	userHandler := NewUserHandler(deps.UserUC)
	me := authed.Group("/me")
	me.Get("/", userHandler.Me)
	me.Put("/", userHandler.UpdateMe)
	me.Get("/menu", authHandler.Menu)

	// Approved users only from here down.
	gated := authed.Group("/", RequireApproved(deps.AuthUC))

	// Customers
	customers := gated.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Appointments
	appointments := gated.Group("/appointments")
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	appointments.Post("/", appointmentHandler.Create)
	appointments.Get("/", appointmentHandler.List)
	appointments.Get("/:id", appointmentHandler.GetByID)
	appointments.Put("/:id", appointmentHandler.Update)

	// Invitations: HQ invites owners, owners invite staff. Staff are kept out
	// at the route; finer rules live in the usecase.
	invitations := gated.Group("/invitations", RequireRole(hq, owner))
	invitationHandler := NewInvitationHandler(deps.InvitationUC)
	invitations.Post("/", invitationHandler.Create)
	invitations.Get("/", invitationHandler.List)
	invitations.Delete("/:id", invitationHandler.Delete)

	// Admin subtree (HQ only)
	admin := gated.Group("/admin", RequireRole(hq))

	users := admin.Group("/users")
	approvalHandler := NewApprovalHandler(deps.ApprovalUC)
	users.Get("/", userHandler.List)
	users.Put("/approval", approvalHandler.SetApprovalBatch)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id/role", userHandler.ChangeRole)
	users.Put("/:id/active", userHandler.SetActive)
	users.Put("/:id/approval", approvalHandler.SetApproval)
	users.Get("/:id/approval-history", approvalHandler.History)

	branches := admin.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Post("/", branchHandler.Create)
	branches.Get("/", branchHandler.List)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Put("/:id", branchHandler.Update)
	branches.Delete("/:id", branchHandler.Delete)

	stats := admin.Group("/stats")
	statsHandler := NewStatsHandler(deps.StatsUC, deps.ReportUC)
	stats.Get("/branches", statsHandler.BranchStats)
	stats.Get("/branches/pdf", statsHandler.BranchStatsPDF)

	adminHandler := NewAdminHandler(deps.BackupUC, deps.APIKeyUC)
	admin.Get("/backup", adminHandler.Backup)
	keys := admin.Group("/api-keys")
	keys.Post("/", adminHandler.CreateAPIKey)
	keys.Get("/", adminHandler.ListAPIKeys)
	keys.Delete("/:id", adminHandler.RevokeAPIKey)
}
