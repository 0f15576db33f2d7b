package middleware

import (
	"net/http"

	"movie-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requesterHeader = "X-Requester-Id"
	roleHeader      = "X-Requester-Role"
)

// RequireRequester reads the requester identity resolved by the upstream
// auth layer. Requests without a parseable requester id are rejected;
// nothing in this service verifies credentials.
func RequireRequester(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(requesterHeader)
			if raw == "" {
				utils.ResponseUnauthorized(w, "Missing requester identity")
				return
			}

			requesterID, err := uuid.Parse(raw)
			if err != nil {
				logger.Warn("Malformed requester id header", zap.String("value", raw))
				utils.ResponseUnauthorized(w, "Invalid requester identity")
				return
			}

			role := r.Header.Get(roleHeader)
			if role == "" {
				role = "customer"
			}

			ctx := utils.SetRequesterContext(r.Context(), requesterID, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates privileged routes on the role resolved upstream.
func RequireAdmin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok || role != "admin" {
				requesterID, _ := utils.GetRequesterIDFromContext(r.Context())
				logger.Warn("Non-admin access attempt",
					zap.String("requester_id", requesterID.String()),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
