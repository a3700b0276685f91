package v1

import (
	"log"

	"talent-match/internal/config"
	"talent-match/internal/database"
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/user"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/infrastructure/persistence/postgres"
	"talent-match/internal/pkg/jwt"
	"talent-match/internal/repository"
	"talent-match/internal/usecase"
	"talent-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Redis  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	cfg := deps.Config

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := postgres.NewUserRepository(deps.DB)
	skillRepo := repository.NewPostgresSkillRepository(deps.DB)
	candidateSkillRepo := repository.NewPostgresCandidateSkillRepository(deps.DB)
	roleRepo := repository.NewPostgresJobRoleRepository(deps.DB)
	appRepo := repository.NewPostgresApplicationRepository(deps.DB)

	ranks := usecase.NewRankCache(deps.Redis, cfg.Redis.RankTTL)
	notifier := ws.NewApplicationNotifier(deps.Hub)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	skillUC := usecase.NewSkillUsecase(skillRepo, candidateSkillRepo, ranks, deps.Logger)
	assessmentUC := usecase.NewAssessmentUsecase(candidateSkillRepo, ranks, deps.Logger)
	matchingUC := usecase.NewMatchingUsecase(roleRepo, candidateSkillRepo, appRepo, ranks, notifier, cfg.Matching.NotifyThreshold, deps.Logger)
	gapUC := usecase.NewGapUsecase(roleRepo, candidateSkillRepo, deps.Logger)
	roleUC := usecase.NewRoleUsecase(roleRepo, skillRepo, deps.Logger)

	authHandler := handler.NewAuthHandler(authUC)
	skillHandler := handler.NewSkillHandler(skillUC)
	assessmentHandler := handler.NewAssessmentHandler(assessmentUC)
	matchHandler := handler.NewMatchHandler(matchingUC)
	roleHandler := handler.NewRoleHandler(roleUC)
	gapHandler := handler.NewGapHandler(gapUC)
	wsHandler := ws.NewHandler(deps.Hub, deps.Logger)

	authHandler.RegisterRoutes(r.Group("/auth"))

	// Shared catalog is readable without an account.
	skillHandler.RegisterCatalogRoutes(r.Group("/skills"))

	protected := r.Group("", authMw.Middleware())

	rolesGroup := protected.Group("/roles")
	roleHandler.RegisterRoutes(rolesGroup)

	me := protected.Group("/me")
	skillHandler.RegisterRoutes(me.Group("/skills"))
	assessmentHandler.RegisterRoutes(me.Group("/assessments"))
	gapHandler.RegisterRoutes(me.Group("/gaps"))
	matchHandler.RegisterRoutes(me)

	recruiter := protected.Group("", authMw.RequireRole(user.RoleRecruiter))
	recruiterRoles := recruiter.Group("/roles")
	roleHandler.RegisterRecruiterRoutes(recruiterRoles)
	matchHandler.RegisterRecruiterRoutes(recruiterRoles)
	skillHandler.RegisterRecruiterRoutes(recruiter.Group("/candidates"))

	protected.Get("/ws/notifications", wsHandler.HandleNotificationsWS)
}
