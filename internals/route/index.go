// file: internals/route/index.go
package route

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "minhaescola_backend/internals/middlewares/auth"
	featuresMiddleware "minhaescola_backend/internals/middlewares/features"
	routeDetails "minhaescola_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	jwtOpts := authMiddleware.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
	}

	// ===================== GROUPS =====================

	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(jwtOpts),
	)

	log.Println("[INFO] Setting up ADMIN group (Auth + role check)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(jwtOpts),
		featuresMiddleware.IsAdministrative(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Consent routes...")
	routeDetails.ConsentUserRoutes(private, db)
	routeDetails.ConsentAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Billing routes...")
	routeDetails.BillingPublicRoutes(public, db)
	routeDetails.BillingAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Printing routes...")
	routeDetails.PrintingUserRoutes(private, db)
	routeDetails.PrintingAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Document routes...")
	routeDetails.DocumentUserRoutes(private, db)
	routeDetails.DocumentAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Canteen routes...")
	routeDetails.CanteenAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Academics routes...")
	routeDetails.AcademicsUserRoutes(private, db)
	routeDetails.AcademicsAdminRoutes(admin, db)
}
