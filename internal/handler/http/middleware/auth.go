package middleware

import (
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/wageflow/payroll-backend-go/internal/domain/auth"
	"github.com/wageflow/payroll-backend-go/internal/handler/http/response"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				// A request with no Authorization header at all gets a
				// distinct message from one carrying a bad token.
				if errors.Is(err, jwtauth.ErrNoTokenFound) {
					response.HandleError(w, auth.ErrMissingBearer)
					return
				}
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
