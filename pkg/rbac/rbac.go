// Package rbac provides role-based access control middleware.
package rbac

import (
	"net/http"

	"github.com/jackmarxreacher-creator/rby-sub000/pkg/middleware"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/response"
)

// HasRole allows access only to users carrying one of the given roles.
// middleware.Auth must already have run so the role is in context.
func HasRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := middleware.RoleFromCtx(r)
			if !ok || !allowed[role] {
				response.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
