// README: HTTP router registration.
package http

import (
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"travelplanner/internal/http/handlers"
	"travelplanner/internal/http/middleware"
)

var registerFieldNames sync.Once

func NewRouter(planHandler *handlers.PlanHandler) *gin.Engine {
	registerFieldNames.Do(useJSONFieldNames)

	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	r.GET("/", planHandler.Welcome)
	r.POST("/generate-travel-plan", planHandler.Generate)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}

// useJSONFieldNames makes validation errors report JSON field names instead of Go ones.
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
}
