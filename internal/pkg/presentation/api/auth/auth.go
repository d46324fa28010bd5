package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/open-policy-agent/opa/v1/rego"
	"go.opentelemetry.io/otel"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

type callerContextKey struct{ name string }

var callerCtxKey = &callerContextKey{"caller"}

var tracer = otel.Tracer("crib-monitoring/authz")

// NewAuthenticator parses the supplied authz policies and returns a middleware
// that rejects requests whose bearer token the policy does not accept. On
// success the caller id from the policy result is stored in the request
// context.
func NewAuthenticator(ctx context.Context, policies io.Reader) (func(http.Handler) http.Handler, error) {
	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, fmt.Errorf("unable to read authz policies: %w", err)
	}

	query, err := rego.New(
		rego.Query("x = data.cribmonitoring.authz.allow"),
		rego.Module("cribmonitoring.rego", string(module)),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, err
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var err error

			logger := logging.GetFromContext(r.Context())

			_, span := tracer.Start(r.Context(), "check-auth")
			defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

			token := r.Header.Get("Authorization")

			if token == "" || !strings.HasPrefix(token, "Bearer ") {
				err = errors.New("authorization header missing")
				logger.Info(err.Error())
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			input := map[string]any{
				"token":  token[7:],
				"path":   r.URL.Path,
				"method": r.Method,
			}

			results, err := query.Eval(r.Context(), rego.EvalInput(input))
			if err != nil {
				logger.Error("opa eval failed", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			if len(results) == 0 {
				err = errors.New("opa query could not be satisfied")
				logger.Error("auth failed", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			binding := results[0].Bindings["x"]

			// A denied token comes back as a single bool. Check for that first.
			allowed, ok := binding.(bool)
			if ok && !allowed {
				err = errors.New("authorization failed")
				logger.Warn(err.Error())
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			result, ok := binding.(map[string]any)
			if !ok {
				err = errors.New("unexpected result type")
				logger.Error("opa error", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			callerID, ok := result["caller_id"].(string)
			if !ok || callerID == "" {
				err = errors.New("bad response from authz policy engine")
				logger.Error("opa error", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			r = r.WithContext(WithCallerID(r.Context(), callerID))

			next.ServeHTTP(w, r)
		})
	}, nil
}

func WithCallerID(ctx context.Context, callerID string) context.Context {
	return context.WithValue(ctx, callerCtxKey, callerID)
}

// GetCallerFromContext returns the authenticated caller id, or an empty
// string if the request never passed through the authenticator.
func GetCallerFromContext(ctx context.Context) string {
	callerID, ok := ctx.Value(callerCtxKey).(string)
	if !ok {
		return ""
	}
	return callerID
}
