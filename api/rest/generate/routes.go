package generate

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"codeberg.org/licitgov/server/internal/auth"
	"codeberg.org/licitgov/server/internal/generate"
)

// generations are expensive upstream calls, keep the per-client rate low
const generateRateLimit = "10-M"

// registers document generation routes
func RegisterRoutes(router *gin.RouterGroup, svc *generate.Service, gate *generate.Gate, saver DocumentSaver) {
	rate, err := limiter.NewRateFromFormatted(generateRateLimit)
	if err != nil {
		panic(err)
	}

	rateLimiter := mgin.NewMiddleware(limiter.New(memory.NewStore(), rate))

	router.POST("/generate", rateLimiter, auth.OptionalAuthMiddleware(), Handler(svc, gate, saver))
	router.GET("/generate/status", auth.OptionalAuthMiddleware(), StatusHandler(gate))
	router.GET("/generate/types", TypesHandler())
}
