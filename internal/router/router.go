package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"healthbridge/internal/config"
	"healthbridge/internal/errors"
	"healthbridge/internal/handler"
	"healthbridge/internal/service"
)

// CustomValidator adapts go-playground/validator to echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates a request struct.
func (v *CustomValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	diseaseHandler *handler.DiseaseHandler,
	medicineHandler *handler.MedicineHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	diagnosisHandler *handler.DiagnosisHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/static", cfg.StaticDir)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	api.GET("/diseases", diseaseHandler.List)
	api.GET("/diseases/:id", diseaseHandler.Get)

	api.GET("/medicines", medicineHandler.List)
	api.GET("/medicines/images", medicineHandler.Images)
	api.GET("/medicines/:id", medicineHandler.Get)

	api.GET("/cart", cartHandler.Get)
	api.DELETE("/cart", cartHandler.Clear)
	api.GET("/cart/count", cartHandler.Count)
	api.POST("/cart/items", cartHandler.Add)
	api.PUT("/cart/items/:id", cartHandler.Update)
	api.DELETE("/cart/items/:id", cartHandler.Remove)

	api.POST("/orders/checkout", orderHandler.Checkout)
	api.GET("/orders", orderHandler.History)
	api.GET("/orders/:id", orderHandler.Get)

	api.POST("/diagnosis", diagnosisHandler.Diagnose)

	// Secured routes (require JWT authentication)
	secured := api.Group("", JWTMiddleware(cfg.JWTSecret))

	secured.GET("/auth/me", authHandler.Me)

	// Admin routes (require the admin role on top of a valid token)
	admin := secured.Group("/admin", RequireAdmin(authService))

	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/users", adminHandler.Users)
	admin.GET("/orders", adminHandler.Orders)
	admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
	admin.POST("/medicines", adminHandler.CreateMedicine)
	admin.PUT("/medicines/:id", adminHandler.UpdateMedicine)
	admin.DELETE("/medicines/:id", adminHandler.DeleteMedicine)
	admin.POST("/medicines/:id/image", adminHandler.UploadImage)
	admin.GET("/records", diagnosisHandler.Records)
	admin.GET("/records/:id", diagnosisHandler.Record)
}

// JWTMiddleware validates bearer tokens on the secured route groups. The
// lookup string names the Bearer scheme so the prefix is stripped before
// the token reaches the parser.
func JWTMiddleware(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
	})
}

// RequireAdmin resolves the token subject to a stored user and rejects
// non-admins. The role claim in the token is not trusted on its own; a
// demoted admin is locked out as soon as the row changes.
func RequireAdmin(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, ok := handler.TokenSubject(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "invalid token",
					Code:  "INVALID_TOKEN",
				})
			}

			user, err := authService.CurrentUser(c.Request().Context(), email)
			if err != nil {
				httpErr := errors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			if !user.IsAdmin() {
				httpErr := errors.MapErrorToHTTP(errors.ErrForbidden)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}
