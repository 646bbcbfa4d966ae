package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fabricatextil/inventario-api/internal/application/auth"
	"github.com/fabricatextil/inventario-api/internal/application/inventory"
	"github.com/fabricatextil/inventario-api/internal/application/reports"
	"github.com/fabricatextil/inventario-api/internal/application/usecase"
	"github.com/fabricatextil/inventario-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	CatalogUC   *usecase.CatalogUseCase
	AIUC        *usecase.AIUseCase
	StockUC     *inventory.StockUseCase
	HistoryUC   *inventory.HistoryUseCase
	DashboardUC *reports.DashboardUseCase
	ReportUC    *reports.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
//
// Superficie pública: auth, consulta de productos y el kiosco de escaneo
// rápido (con auth opcional para atribuir movimientos). Todo lo demás exige
// Bearer Token; las eliminaciones quedan reservadas al rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo de consulta (público): el QR informativo del rollo apunta aquí
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/productos", productHandler.List)
	api.Get("/productos/:sku", productHandler.GetDetail)

	// Kiosco de escaneo rápido (público, con atribución si hay token)
	kioskHandler := NewKioskHandler(deps.StockUC, deps.ProductUC)
	kiosco := api.Group("/kiosco", OptionalAuthMiddleware(deps.JWTSecret))
	kiosco.Get("/:sku", kioskHandler.GetProduct)
	kiosco.Post("/:sku/movimientos", kioskHandler.RegisterMovement)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo de productos (escritura protegida)
	protected.Post("/productos", productHandler.Create)
	protected.Put("/productos/:sku", productHandler.Update)
	protected.Delete("/productos/:sku", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Movimientos de inventario (protegido)
	inventoryHandler := NewInventoryHandler(deps.StockUC, deps.HistoryUC)
	protected.Post("/productos/:sku/entradas", inventoryHandler.RegistrarEntrada)
	protected.Post("/productos/:sku/salidas", inventoryHandler.RegistrarSalida)
	protected.Put("/productos/:sku/stock", inventoryHandler.AjustarStock)
	protected.Get("/productos/:sku/movimientos", inventoryHandler.ListarMovimientos)

	// Categorías y proveedores (protegido)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Post("/categorias", catalogHandler.CreateCategory)
	protected.Get("/categorias", catalogHandler.ListCategories)
	protected.Post("/proveedores", catalogHandler.CreateSupplier)
	protected.Get("/proveedores", catalogHandler.ListSuppliers)

	// Dashboard y reportes (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetDashboard)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reportes/movimientos", reportHandler.GetMovementReport)
	protected.Get("/reportes/inventario/pdf", reportHandler.GetInventoryPDF)

	// IA (protegido)
	aiHandler := NewAIHandler(deps.AIUC)
	protected.Post("/ia/generar-descripcion", aiHandler.GenerateDescription)
}
