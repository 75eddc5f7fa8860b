package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"directory-service/internal/errs"

	"github.com/gin-gonic/gin"
)

// Health pings the store. Any ping failure reports the store unavailable.
func (ctrl *Controller) Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctrl.requestContext(c)
		defer cancel()

		if err := ctrl.DB.Ping(ctx); err != nil {
			if !errors.Is(err, errs.ErrStoreUnavailable) {
				err = fmt.Errorf("%w: %v", errs.ErrStoreUnavailable, err)
			}
			abortWithError(c, "store unreachable", err)
			return
		}
		c.String(http.StatusOK, "ok")
	}
}
