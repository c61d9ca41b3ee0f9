package http

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskflowhq/taskflow-server/internal/domain/errors"
)

// errorResponse maps domain errors to HTTP status codes. PersistenceError is
// 503 so clients know a retry may succeed; DecompositionServiceError is 502
// because the upstream model is the failing party.
func errorResponse(c echo.Context, err error) error {
	var validationErr *errors.ValidationError
	if stderrors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": validationErr.Error()})
	}

	var emptyErr *errors.EmptySelectionError
	if stderrors.As(err, &emptyErr) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": emptyErr.Error()})
	}

	var notFoundErr *errors.NotFoundError
	if stderrors.As(err, &notFoundErr) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": notFoundErr.Error()})
	}

	var decompositionErr *errors.DecompositionServiceError
	if stderrors.As(err, &decompositionErr) {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "decomposition service unavailable"})
	}

	var persistenceErr *errors.PersistenceError
	if stderrors.As(err, &persistenceErr) {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "storage temporarily unavailable"})
	}

	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

// authUserID extracts the authenticated user id set by the JWT middleware.
func authUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get("user_id").(string)
	return userID, ok && userID != ""
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
}
