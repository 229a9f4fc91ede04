package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/dto"
)

// errPanic stands in for the panic value in the problem response; the value
// and stack only go to the log.
var errPanic = errors.New("handler panicked")

// Recovery returns middleware that turns a panic in a downstream handler into
// a 500 problem response. Nothing is written when the handler already sent
// its headers; the panic is logged either way.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := wrapWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", RequestIDFromContext(r.Context())),
				)

				if !rw.wroteHeader {
					dto.WriteProblem(rw, r, dto.NewErrorResponse(r, errPanic))
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
