package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"classroom-reservations/internal/domain/user"
	"classroom-reservations/internal/handler/api"
	"classroom-reservations/internal/handler/middleware"
	"classroom-reservations/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Reservation *api.ReservationHandler
	Exam        *api.ExamHandler
	Room        *api.RoomHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogging(logger))
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NoRoute())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	approver := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleDirector)}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleTeacher))
	{
		reservations := apiGroup.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
			{Method: http.MethodPost, Path: "/batch", Handler: h.Reservation.CreateBatch},
			{Method: http.MethodGet, Path: "/pending", Handler: h.Reservation.ListPending, Mw: approver},
			{Method: http.MethodGet, Path: "/mine", Handler: h.Reservation.ListMine},
			{Method: http.MethodGet, Path: "/availability", Handler: h.Reservation.CheckAvailability},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.Edit},
			{Method: http.MethodPatch, Path: "/:id/approve", Handler: h.Reservation.Approve, Mw: approver},
			{Method: http.MethodPatch, Path: "/:id/reject", Handler: h.Reservation.Reject, Mw: approver},
			{Method: http.MethodPatch, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
			{Method: http.MethodPatch, Path: "/:id/release", Handler: h.Reservation.Release, Mw: approver},
		})

		exams := apiGroup.Group("/exam-reservations")
		addRoutes(exams, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Exam.Create},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Exam.Edit},
		})

		rooms := apiGroup.Group("/rooms")
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Room.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},
			{Method: http.MethodGet, Path: "/:id/reservations/approved", Handler: h.Room.ListApproved},
			{Method: http.MethodGet, Path: "/:id/exam-reservations/approved", Handler: h.Room.ListApprovedExams},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
