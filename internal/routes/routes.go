package routes

import (
	"time"

	"drivebox/internal/auth"
	"drivebox/internal/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/monitor"
)

// SetupRoutes wires the HTTP surface. Everything under /files and /folders
// is gated on a valid bearer token except anonymous share redemption.
func SetupRoutes(app *fiber.App, verifier *auth.Verifier, authHandler *handlers.AuthHandler, fileHandler *handlers.FileHandler, folderHandler *handlers.FolderHandler) {
	// Monitor route
	app.Get("/metrics", monitor.New())

	// Health check route
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"service":   "drivebox",
			"timestamp": time.Now().UTC(),
		})
	})

	// Auth routes (delegated to the external auth service)
	authGroup := app.Group("/auth")
	authGroup.Post("/signup", authHandler.SignUp)
	authGroup.Post("/signin", authHandler.SignIn)
	authGroup.Post("/signout", authHandler.SignOut)

	// File routes
	files := app.Group("/files")

	// Anonymous share redemption is the only unauthenticated read path.
	files.Get("/shared/:token", fileHandler.RedeemShare)

	files.Use(verifier.Middleware)
	files.Post("/upload", fileHandler.UploadFile)
	files.Get("/", fileHandler.ListFiles)
	files.Get("/search", fileHandler.SearchFiles)
	files.Get("/trash", fileHandler.ListTrash)
	files.Delete("/trash/empty", fileHandler.EmptyTrash)
	files.Get("/:id/preview", fileHandler.PreviewFile)
	files.Post("/:id/share", fileHandler.ShareFile)
	files.Post("/:id/restore", fileHandler.RestoreFile)
	files.Delete("/:id/permanent", fileHandler.PermanentlyDeleteFile)
	files.Delete("/:id", fileHandler.TrashFile)

	// Folder routes
	folders := app.Group("/folders", verifier.Middleware)
	folders.Get("/", folderHandler.ListFolders)
	folders.Post("/", folderHandler.CreateFolder)
	folders.Put("/:id", folderHandler.UpdateFolder)
	folders.Delete("/:id", folderHandler.DeleteFolder)
}
