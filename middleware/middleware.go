// Package middleware provides net/http helpers that validate JSON request
// bodies against a shapecheck pattern before the handler runs. Handlers are
// plain http.Handler values, so the middleware composes with chi and any
// other stdlib-compatible router.
package middleware

import (
	"context"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	shapecheck "github.com/shapecheck/shapecheck"
)

// ctxKeyDecoded is the typed context key for the decoded request body.
type ctxKeyDecoded struct{}

// ContextWithDecoded attaches a decoded request body to the context.
func ContextWithDecoded(ctx context.Context, v any) context.Context {
	return context.WithValue(ctx, ctxKeyDecoded{}, v)
}

// DecodedFromContext retrieves the decoded request body stored by
// ValidateJSON. A stored JSON null is indistinguishable from an absent entry;
// both report false.
func DecodedFromContext(ctx context.Context) (any, bool) {
	v := ctx.Value(ctxKeyDecoded{})
	if v == nil {
		return nil, false
	}
	return v, true
}

// DefaultMaxBytes caps request bodies when Options.MaxBytes is unset.
const DefaultMaxBytes int64 = 1 << 20

// DefaultBodyName is the display name request bodies are reported under.
const DefaultBodyName = "requestBody"

// Options configures ValidateJSON.
type Options struct {
	// Pattern the request body has to match. Required.
	Pattern shapecheck.Pattern
	// Checker runs the validation; nil means a fresh default Checker
	// (no observable library).
	Checker *shapecheck.Checker
	// Name is the display name used in error messages and paths.
	// Defaults to DefaultBodyName.
	Name string
	// MaxBytes caps the request body size. Defaults to DefaultMaxBytes.
	MaxBytes int64
	// Logger records rejected requests: input errors at warn, config
	// errors at error. The zero value logs nowhere.
	Logger zerolog.Logger
}

// ValidateJSON decodes the request body as JSON and checks it against the
// configured pattern. On success the decoded body is stored in the request
// context and the next handler runs. On failure the response carries the
// error's own HTTP status: 400 for data problems, 500 for broken patterns.
func ValidateJSON(opt Options) func(http.Handler) http.Handler {
	checker := opt.Checker
	if checker == nil {
		checker = shapecheck.New()
	}
	name := opt.Name
	if name == "" {
		name = DefaultBodyName
	}
	maxBytes := opt.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
			if err != nil {
				opt.Logger.Warn().Err(err).Str("name", name).Msg("request body unreadable")
				writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
				return
			}
			v, err := shapecheck.ValueJSON(body)
			if err == nil {
				err = checker.CheckNamed(v, opt.Pattern, name)
			}
			if err != nil {
				se, ok := shapecheck.AsError(err)
				if !ok {
					writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
					return
				}
				logRejected(opt.Logger, se, name)
				writeJSON(w, se.Status, ErrorPayload(se))
				return
			}
			ctx := ContextWithDecoded(r.Context(), v)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ErrorPayload shapes a check failure for JSON responses.
func ErrorPayload(e *shapecheck.Error) map[string]any {
	return map[string]any{
		"error": map[string]any{
			"code":    e.Code,
			"message": e.Message,
			"path":    e.Path,
		},
	}
}

func logRejected(logger zerolog.Logger, e *shapecheck.Error, name string) {
	ev := logger.Warn()
	if e.Code == shapecheck.CodeInvalidConfig {
		ev = logger.Error()
	}
	ev.Str("name", name).
		Str("code", e.Code).
		Str("path", e.Path).
		Str("reason", e.Message).
		Msg("request body rejected")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
