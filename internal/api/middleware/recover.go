package middleware

import (
	"net/http"
	"runtime/debug"
)

// RecoverLogger минимальный интерфейс логгера для recover middleware
type RecoverLogger interface {
	Error(format string, v ...interface{})
}

// Recover перехватывает панику в обработчике и отвечает 500
func Recover(log RecoverLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic in handler %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
					http.Error(w, `{"error":"внутренняя ошибка сервера"}`, http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
