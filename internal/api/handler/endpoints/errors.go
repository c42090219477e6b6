package endpoints

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"jobboard/internal/api/handler/response"
	"jobboard/internal/api/service"

	"github.com/gin-gonic/gin"
)

// writeError maps a service error onto its HTTP status. Anything outside
// the taxonomy is a 500 with a generic message so internals never leak.
func writeError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	default:
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Internal server error"})
		return
	}
	c.JSON(status, response.APIError{Message: err.Error()})
}

// splitCSV turns a comma separated query value into trimmed parts,
// dropping empties.
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// pathID parses a numeric path parameter, writing a 400 on garbage.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
