package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jadebro/livecommerce-api/internal/application/auth"
	"github.com/jadebro/livecommerce-api/internal/application/session"
	"github.com/jadebro/livecommerce-api/internal/application/usecase"
	"github.com/jadebro/livecommerce-api/internal/domain/pedido"
	"github.com/jadebro/livecommerce-api/internal/infrastructure/imagenes"
	infrapdf "github.com/jadebro/livecommerce-api/internal/infrastructure/pdf"
	"github.com/jadebro/livecommerce-api/internal/infrastructure/postgres"
	httpRouter "github.com/jadebro/livecommerce-api/internal/interfaces/http"
	"github.com/jadebro/livecommerce-api/pkg/config"
	"github.com/jadebro/livecommerce-api/pkg/logger"
	"github.com/jadebro/livecommerce-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.MigrationsPath != "" {
		if err := postgres.RunMigrations(cfg.DB, cfg.DB.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	comercianteRepo := postgres.NewComercianteRepository(pool)
	tiendaRepo := postgres.NewTiendaRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	imagenRepo := postgres.NewImagenRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	sessions := session.NewMemoryStore(time.Duration(cfg.Session.TTLMinutes) * time.Minute)
	defer sessions.Close()

	generadorCodigo, err := pedido.NewGeneradorCodigo(cfg.Pedidos.CodigoPrefijo)
	if err != nil {
		log.Fatal().Err(err).Msg("generador de códigos de pedido")
	}

	imagenHost := imagenes.NewClient(cfg.Imagenes)
	reciboGen := infrapdf.NewMarotoReciboGenerator()

	authUC := auth.NewAuthUseCase(comercianteRepo, txRunner)
	tiendaUC := usecase.NewTiendaUseCase(tiendaRepo, comercianteRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo, comercianteRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	imagenUC := usecase.NewImagenUseCase(imagenRepo, productoRepo, txRunner, imagenHost, cfg.Uploads)
	pedidoUC := usecase.NewPedidoUseCase(pedidoRepo, tiendaRepo, txRunner, generadorCodigo, reciboGen)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    int(cfg.Uploads.MaxSizeBytes) * 12, // margen para subidas múltiples
	})
	app.Use(recover.New())

	httpMetrics := metrics.NewHTTPMetrics(cfg.App.Name)
	app.Use(httpMetrics.Middleware())
	app.Get("/metrics", httpMetrics.Handler())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "LiveCommerce API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		TiendaUC:    tiendaUC,
		ProductoUC:  productoUC,
		CategoriaUC: categoriaUC,
		ImagenUC:    imagenUC,
		PedidoUC:    pedidoUC,
		DashboardUC: dashboardUC,
		Sessions:    sessions,
		SessionCfg:  cfg.Session,
		Env:         cfg.App.Env,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
