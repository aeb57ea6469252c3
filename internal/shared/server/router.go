package server

import (
	"database/sql"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/shared/config"
	"resume-builder-backend/internal/shared/metrics"
	"resume-builder-backend/internal/shared/server/middleware"
	"resume-builder-backend/internal/shared/server/respond"
	"resume-builder-backend/internal/users"
)

// RouterDeps carries the constructed handlers into the router.
type RouterDeps struct {
	Config         config.Config
	DB             *sql.DB
	UsersHandler   *users.Handler
	ResumesHandler *resumes.Handler
}

// NewRouter constructs the gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(uploadRateLimit()),
	)

	root := r.Group("/")
	deps.UsersHandler.RegisterRoutes(root)
	deps.ResumesHandler.RegisterRoutes(root)

	r.GET("/health", healthHandler(deps.DB))
	r.GET("/metrics", metrics.Handler())

	registerStatic(r, deps.Config)

	return r
}

func uploadRateLimit() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"UPLOAD": {Rate: 1, Burst: 10},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost {
				switch c.FullPath() {
				case "/upload-resume", "/save-resume-from-builder":
					return "UPLOAD"
				}
			}
			return "DEFAULT"
		},
	}
}

func healthHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			if err := db.PingContext(c.Request.Context()); err != nil {
				respond.Error(c, http.StatusInternalServerError, "Database connection failed")
				return
			}
		}
		respond.OK(c, gin.H{"ok": true})
	}
}

// registerStatic serves the landing page and, for the local object store,
// the pseudo-signed download URLs it mints.
func registerStatic(r *gin.Engine, cfg config.Config) {
	index := filepath.Join(cfg.PublicDir, "index.html")
	if _, err := os.Stat(index); err == nil {
		r.StaticFile("/", index)
	}
	if cfg.ObjectStoreType == "local" {
		r.Static("/local-files", cfg.LocalStoreDir)
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8081"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
