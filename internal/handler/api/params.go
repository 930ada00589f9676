package api

import (
	"strconv"

	"nagoyameshi/internal/handler/httperr"
	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

var errNoActor = errs.New("no authenticated actor on request")

// pathID parses a positive int64 path parameter or aborts with 400.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errs.Newf("non-positive %s %d", name, id)
		}
		badRequest(c, err)
		return 0, false
	}
	return id, true
}

// requireActor is a safety net behind AccessGate; routes that reach a handler
// calling it are never PUBLIC.
func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithRedirect(c, middleware.LoginPath, errNoActor, "Please log in to continue.")
		return shared.Actor{}, false
	}
	return actor, true
}
