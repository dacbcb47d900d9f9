package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/softventure/timesheet-backend-go/internal/domain/auth"
	"github.com/softventure/timesheet-backend-go/internal/domain/report"
	"github.com/softventure/timesheet-backend-go/internal/pkg/jwt"
)

// actorFromRequest builds the acting identity from the verified JWT claims.
func actorFromRequest(r *http.Request) (report.Actor, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return report.Actor{}, auth.ErrInvalidToken
	}

	employeeID, ok := jwt.EmployeeIDFromClaims(claims)
	if !ok {
		return report.Actor{}, auth.ErrInvalidToken
	}

	role, ok := jwt.RoleFromClaims(claims)
	if !ok {
		return report.Actor{}, auth.ErrInvalidToken
	}

	return report.Actor{EmployeeID: employeeID, Role: role}, nil
}
