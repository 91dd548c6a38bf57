package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/ventas-admin-api/internal/application/analytics"
	"github.com/jhoicas/ventas-admin-api/internal/application/export"
	"github.com/jhoicas/ventas-admin-api/internal/application/usecase"
	"github.com/jhoicas/ventas-admin-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClienteUC   *usecase.ClienteUseCase
	TableUC     *usecase.TableUseCase
	VentaUC     *usecase.VentaUseCase
	ContactoUC  *usecase.ContactoUseCase
	CampoUC     *usecase.CampoUseCase
	DashboardUC *appanalytics.DashboardUseCase
	ExportUC    *export.ExportUseCase
	ReportUC    *export.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Todas las rutas requieren Bearer Token (o ?token= en descargas)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	writers := RequireRole(entity.RoleAdmin, entity.RoleAsesor)
	admins := RequireRole(entity.RoleAdmin)
	access := RequireClienteAccess(deps.ClienteUC)

	// Clientes (admin)
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	protected.Get("/clientes", admins, clienteHandler.List)
	protected.Post("/clientes", admins, clienteHandler.Create)

	// Rutas de un cliente: el usuario debe tener acceso y el cliente estar activo
	cliente := protected.Group("/clientes/:clienteId", access)
	cliente.Get("/", clienteHandler.GetByID)

	// Tablas configurables
	tableHandler := NewTableHandler(deps.TableUC)
	exportHandler := NewExportHandler(deps.ExportUC, deps.ReportUC)
	tablas := cliente.Group("/tablas/:tabla")
	tablas.Get("/columnas", tableHandler.Columns)
	tablas.Put("/preferencias", tableHandler.UpdatePreferences)
	tablas.Delete("/preferencias", tableHandler.ResetPreferences)
	tablas.Get("/filas", tableHandler.Rows)
	tablas.Get("/exportar", exportHandler.Export)
	tablas.Post("/reporte", exportHandler.Report)

	// Descarga de reportes generados
	protected.Get("/exports/:clienteId/:file", access, exportHandler.Download)

	// Ventas
	ventaHandler := NewVentaHandler(deps.VentaUC)
	cliente.Post("/ventas", writers, ventaHandler.Create)
	cliente.Get("/ventas/:id", ventaHandler.GetByID)
	cliente.Delete("/ventas/:id", writers, ventaHandler.Delete)

	// Contactos
	contactoHandler := NewContactoHandler(deps.ContactoUC)
	cliente.Post("/contactos", writers, contactoHandler.Create)
	cliente.Get("/contactos/:id", contactoHandler.GetByID)
	cliente.Delete("/contactos/:id", writers, contactoHandler.Delete)

	// Campos adicionales
	campoHandler := NewCampoHandler(deps.CampoUC)
	cliente.Get("/campos", campoHandler.List)
	cliente.Post("/campos", admins, campoHandler.Create)
	cliente.Delete("/campos/:id", admins, campoHandler.Delete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	cliente.Get("/dashboard/resumen", dashboardHandler.GetResumen)
}
