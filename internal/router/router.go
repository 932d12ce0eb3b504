package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ArojasJ/agendas-entregas/internal/config"
	"github.com/ArojasJ/agendas-entregas/internal/handler"
	"github.com/ArojasJ/agendas-entregas/internal/middleware"
	"github.com/ArojasJ/agendas-entregas/internal/repository"
	"github.com/ArojasJ/agendas-entregas/internal/service"
	"github.com/ArojasJ/agendas-entregas/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.APIRateLimit, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	agendaRepo := repository.NewAgendaRepository(db)
	bloqueoRepo := repository.NewDiaBloqueadoRepository(db)
	corteRepo := repository.NewCorteCajaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(cfg)
	agendaSvc := service.NewAgendaService(agendaRepo, bloqueoRepo, dispatcher, cfg.NotifyEmail)
	bloqueoSvc := service.NewBloqueoService(bloqueoRepo)
	cajaSvc := service.NewCajaService(db, corteRepo, agendaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	agendasH := handler.NewAgendasHandler(agendaSvc)
	bloqueosH := handler.NewBloqueosHandler(bloqueoSvc)
	cajaH := handler.NewCajaHandler(cajaSvc, cfg.PDFStoragePath)
	disponibilidadH := handler.NewDisponibilidadHandler(agendaSvc, bloqueoSvc, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/v1/auth/login", middleware.LoginRateLimiter(cfg.LoginRateLimit), authH.Login)

	// Public booking surface: the customer widget agenda sin token.
	r.GET("/v1/dias-bloqueados", bloqueosH.Listar)
	r.GET("/v1/disponibilidad", disponibilidadH.Get)
	r.POST("/v1/agendas", agendasH.Crear)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	soloAdmin := middleware.RequireRole(service.RolAdmin)
	staff := middleware.RequireRole(service.RolAdmin, service.RolRepartidor)

	v1 := r.Group("/v1", jwtMW)
	{
		// El repartidor ve y actualiza su ruta; todo lo demas es de admin.
		v1.GET("/agendas", staff, agendasH.Listar)
		v1.PATCH("/agendas/:id/entrega", staff, agendasH.ActualizarEntrega)

		v1.POST("/agendas/manual", soloAdmin, agendasH.CrearManual)
		v1.PATCH("/agendas/:id/reagendar", soloAdmin, agendasH.Reagendar)
		v1.PATCH("/agendas/:id/status", soloAdmin, agendasH.ActualizarStatus)
		v1.DELETE("/agendas/:id", soloAdmin, agendasH.Eliminar)

		bloqueos := v1.Group("/dias-bloqueados", soloAdmin)
		{
			bloqueos.POST("", bloqueosH.Bloquear)
			bloqueos.DELETE("/:id", bloqueosH.Desbloquear)
		}

		caja := v1.Group("/caja", soloAdmin)
		{
			caja.GET("/corte", cajaH.Preparar)
			caja.POST("/corte", cajaH.Crear)
			caja.GET("/historial", cajaH.Historial)
			caja.GET("/cortes/:id", cajaH.Obtener)
			caja.GET("/cortes/:id/pdf", cajaH.ObtenerPDF)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
