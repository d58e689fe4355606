package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jadebro/livecommerce-api/internal/application/auth"
	"github.com/jadebro/livecommerce-api/internal/application/session"
	"github.com/jadebro/livecommerce-api/internal/application/usecase"
	"github.com/jadebro/livecommerce-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	TiendaUC    *usecase.TiendaUseCase
	ProductoUC  *usecase.ProductoUseCase
	CategoriaUC *usecase.CategoriaUseCase
	ImagenUC    *usecase.ImagenUseCase
	PedidoUC    *usecase.PedidoUseCase
	DashboardUC *usecase.DashboardUseCase
	Sessions    session.Store
	SessionCfg  config.SessionConfig
	Env         string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	exponerErrores = deps.Env == "development"

	api := app.Group("/api")

	// Tienda pública (sin sesión)
	public := api.Group("/public")
	publicHandler := NewTiendaPublicaHandler(deps.TiendaUC, deps.ProductoUC, deps.ImagenUC, deps.PedidoUC)
	public.Get("/slug-disponible", publicHandler.SlugDisponible)
	public.Get("/tiendas/:slug", publicHandler.GetTienda)
	public.Get("/tiendas/:slug/productos", publicHandler.ListProductos)
	public.Get("/tiendas/:slug/productos/:id", publicHandler.GetProducto)
	public.Get("/tiendas/:slug/productos/:id/imagenes", publicHandler.ListImagenes)
	public.Post("/tiendas/:slug/pedidos", publicHandler.CreatePedido)

	// Auth (registro y login públicos; me y logout requieren sesión)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions, deps.SessionCfg)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", SessionMiddleware(deps.Sessions, deps.SessionCfg.CookieName), authHandler.Me)

	// Panel admin (sesión por cookie)
	protected := api.Group("/", SessionMiddleware(deps.Sessions, deps.SessionCfg.CookieName))

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Resumen)

	tiendaHandler := NewTiendaHandler(deps.TiendaUC)
	protected.Get("/tienda", tiendaHandler.GetConfig)
	protected.Put("/tienda", tiendaHandler.UpdateConfig)

	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Post("/reconciliar-categorias", productoHandler.Reconciliar)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Galería (anidada en productos)
	imagenHandler := NewImagenHandler(deps.ImagenUC)
	productos.Get("/:id/imagenes", imagenHandler.List)
	productos.Post("/:id/imagenes", imagenHandler.Upload)
	productos.Post("/:id/imagenes/multiple", imagenHandler.UploadMulti)
	productos.Put("/:id/imagenes/orden", imagenHandler.Reordenar)
	productos.Put("/:id/imagenes/:imagenId/principal", imagenHandler.SetPrincipal)
	productos.Delete("/:id/imagenes/:imagenId", imagenHandler.Delete)

	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Post("/", categoriaHandler.Create)
	categorias.Get("/", categoriaHandler.List)
	categorias.Put("/:id", categoriaHandler.Update)
	categorias.Delete("/:id", categoriaHandler.Delete)

	pedidos := protected.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	pedidos.Post("/", pedidoHandler.Create)
	pedidos.Get("/", pedidoHandler.List)
	pedidos.Get("/:id", pedidoHandler.GetByID)
	pedidos.Put("/:id/estado", pedidoHandler.UpdateEstado)
	pedidos.Get("/:id/pdf", pedidoHandler.Recibo)
}
