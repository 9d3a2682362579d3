package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/interviewsim/interview-api/internal/core/domain"
	"github.com/interviewsim/interview-api/internal/core/ports"
)

// Guards run after the Authenticator and before the handler body. A missing
// caller yields 401; a caller failing the gate yields 403. The handler's side
// effects never begin on a denied request.

// RequireAuthenticated rejects requests with no resolved caller.
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Caller(c) == nil {
				return domain.ErrUnauthorized
			}
			return next(c)
		}
	}
}

// RequireRole admits only callers holding the given role.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := Caller(c)
			if caller == nil {
				return domain.ErrUnauthorized
			}
			if !caller.HasRole(role) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// RequireSelfByIDOrAdmin admits admins and the user whose id appears in the
// named path parameter.
func RequireSelfByIDOrAdmin(param string, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := Caller(c)
			if caller == nil {
				return domain.ErrUnauthorized
			}
			if caller.IsAdmin() {
				return next(c)
			}

			target, err := users.FindByID(c.Request().Context(), c.Param(param))
			if err != nil {
				return err
			}
			if target.Username != caller.Username {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// RequireSelfByUsernameOrAdmin admits admins and the caller themselves,
// compared by username equality against the named path parameter.
func RequireSelfByUsernameOrAdmin(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := Caller(c)
			if caller == nil {
				return domain.ErrUnauthorized
			}
			if caller.IsAdmin() || caller.Username == c.Param(param) {
				return next(c)
			}
			return domain.ErrForbidden
		}
	}
}

// RequireSessionOwnerOrAdmin admits admins and the owner of the session whose
// id appears in the named path parameter. The session is loaded here; an
// unknown id surfaces as 404 before any gate decision.
func RequireSessionOwnerOrAdmin(param string, sessions ports.SessionRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := Caller(c)
			if caller == nil {
				return domain.ErrUnauthorized
			}

			session, err := sessions.FindByID(c.Request().Context(), c.Param(param))
			if err != nil {
				return err
			}
			if caller.IsAdmin() || session.Username == caller.Username {
				return next(c)
			}
			return domain.ErrForbidden
		}
	}
}
