package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/hridoylabs/lessonhub/internal/app/system/httpjson"
	"github.com/hridoylabs/lessonhub/internal/app/system/timeouts"
)

// peekLimit bounds how much of a request body the gate will read looking for
// the email field.
const peekLimit = 1 << 20

// AdminOnly is the route middleware form of RequireAdmin. The caller's email
// is taken from the query string, or failing that from an `email` field in a
// JSON body. The body is restored afterwards so the wrapped handler can
// decode it normally.
func (r *Resolver) AdminOnly(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx, cancel := context.WithTimeout(req.Context(), timeouts.Short())
			defer cancel()

			email := req.URL.Query().Get("email")
			if email == "" {
				email = peekBodyEmail(req)
			}

			switch err := r.RequireAdmin(ctx, email); {
			case err == nil:
				next.ServeHTTP(w, req)
			case errors.Is(err, ErrUnauthorized):
				httpjson.Unauthorized(w, "Email required")
			case errors.Is(err, ErrForbidden):
				httpjson.Forbidden(w, "Admin access only")
			default:
				log.Error("admin gate: resolve failed", zap.Error(err))
				httpjson.ServerError(w, "Failed to verify access")
			}
		})
	}
}

// peekBodyEmail reads an `email` field out of a JSON body without consuming
// it: the bytes read are put back on the request.
func peekBodyEmail(req *http.Request) string {
	if req.Body == nil {
		return ""
	}

	raw, err := io.ReadAll(io.LimitReader(req.Body, peekLimit))
	_ = req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var probe struct {
		Email string `json:"email"`
	}
	if json.Unmarshal(raw, &probe) != nil {
		return ""
	}
	return probe.Email
}
