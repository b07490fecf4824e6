package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"healthquiz/internal/service"
	"healthquiz/internal/transport/rest/handler"
	"healthquiz/internal/transport/rest/middleware"
	"healthquiz/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	UserService       *service.UserService
	SubmissionService *service.SubmissionService
	ResultService     *service.ResultService
	ProgressService   *service.ProgressService
	WSHub             *ws.Hub
	AllowedOrigins    string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(c.AuthService)
	userHandler := handler.NewUserHandler(c.UserService)
	submissionHandler := handler.NewSubmissionHandler(c.SubmissionService)
	resultHandler := handler.NewResultHandler(c.ResultService)
	progressHandler := handler.NewProgressHandler(c.ProgressService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS first so preflights never hit auth
	r.Use(corsMiddleware(c.AllowedOrigins))
	r.Use(middleware.RequestLogger)

	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket (token in query param)
	v1.HandleFunc("/ws/users/me", wsHandler.UserWS).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Anonymous or signed-in
	optional := v1.NewRoute().Subrouter()
	optional.Use(authMW.OptionalUser)
	optional.HandleFunc("/submissions", submissionHandler.Create).Methods("POST", "OPTIONS")

	// Signed-in only
	user := v1.NewRoute().Subrouter()
	user.Use(authMW.RequireUser)

	user.HandleFunc("/users/me", userHandler.Me).Methods("GET", "OPTIONS")
	user.HandleFunc("/submissions/me", submissionHandler.ListMine).Methods("GET", "OPTIONS")
	user.HandleFunc("/submissions/{submissionId}/report", submissionHandler.Report).Methods("GET", "OPTIONS")
	user.HandleFunc("/results", resultHandler.Save).Methods("POST", "OPTIONS")
	user.HandleFunc("/results/{submissionId}", resultHandler.Get).Methods("GET", "OPTIONS")
	user.HandleFunc("/progress", progressHandler.Get).Methods("GET", "OPTIONS")
	user.HandleFunc("/progress", progressHandler.Save).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(allowedOrigins string) mux.MiddlewareFunc {
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
