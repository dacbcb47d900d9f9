package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/softventure/timesheet-backend-go/internal/domain/employee"
	"github.com/softventure/timesheet-backend-go/internal/handler/http/response"
	"github.com/softventure/timesheet-backend-go/internal/pkg/jwt"
)

// RequireManager allows managers only.
func RequireManager(next http.Handler) http.Handler {
	return requireRole(next, employee.RoleManager)
}

// RequireAccounting allows accounting staff only.
func RequireAccounting(next http.Handler) http.Handler {
	return requireRole(next, employee.RoleAccounting)
}

func requireRole(next http.Handler, want employee.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Insufficient role for this action")
			return
		}

		role, ok := jwt.RoleFromClaims(claims)
		if !ok || role != want {
			response.Forbidden(w, "Insufficient role for this action")
			return
		}

		next.ServeHTTP(w, r)
	})
}
