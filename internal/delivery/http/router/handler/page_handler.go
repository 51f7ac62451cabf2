package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "gatekeeper/internal/delivery/context"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/delivery/http/response"
)

// PageHandler serves the protected pages. The guard has already
// materialized the session by the time these run; they only read it back
// from the request context.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler instance
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Dashboard serves the dashboard page data.
func (h *PageHandler) Dashboard(c echo.Context) error {
	return h.page(c, "dashboard")
}

// Settings serves the settings page data.
func (h *PageHandler) Settings(c echo.Context) error {
	return h.page(c, "settings")
}

// Profile serves the profile page data.
func (h *PageHandler) Profile(c echo.Context) error {
	return h.page(c, "profile")
}

func (h *PageHandler) page(c echo.Context, name string) error {
	sess := deliverycontext.GetSession(c.Request().Context())
	if sess == nil {
		// Only reachable if the route was mounted without the guard.
		return errors.WithStack(domainerrors.ErrSessionUnavailable)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"page":      name,
		"subjectId": sess.SubjectID,
		"email":     sess.Email,
	}, "")
}
