package middleware

import (
	"net/http"

	"github.com/atlashr/hrms-backend-go/internal/domain/employee"
	"github.com/atlashr/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireRole gates a route to the listed roles. Payroll approval and
// payment actions are restricted to owner and senior_admin.
func RequireRole(roles ...employee.Role) func(http.Handler) http.Handler {
	allowed := make(map[employee.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			if _, ok := allowed[employee.Role(roleStr)]; !ok {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
