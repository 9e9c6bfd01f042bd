package version

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
)

type VersionResponse struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

// buildVersion reads the module version from the build info embedded in the binary.
func buildVersion() VersionResponse {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return VersionResponse{Version: "unknown", GoVersion: "unknown"}
	}

	version := VersionResponse{Version: info.Main.Version, GoVersion: info.GoVersion}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			version.Version = setting.Value
		}
	}

	if version.Version == "" {
		version.Version = "unknown"
	}

	return version
}

func SetupRoutes(app *fiber.App) {
	versionGroup := app.Group("/version")
	versionGroup.Get("/", versionHandler)
}

func versionHandler(c *fiber.Ctx) error {
	return c.JSON(buildVersion())
}
