package wire

import (
	"net/http"

	"campusconnect/internal/common"
	"campusconnect/internal/dbmysql"

	"github.com/gorilla/mux"
)

// NewRouter mounts the /api surface. Reads are public; every mutation goes
// through Auth.Require.
func NewRouter(app *Application) http.Handler {
	r := mux.NewRouter()
	r.Use(app.Auth.Authenticate)
	require := app.Auth.Require

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", health(app)).Methods(http.MethodGet)

	// Profiles
	api.HandleFunc("/profiles/{userId}", app.Users.GetProfile).Methods(http.MethodGet)
	api.HandleFunc("/profiles/{userId}", require(app.Users.UpdateProfile)).Methods(http.MethodPut)

	// Feed
	api.HandleFunc("/posts", app.Feed.ListPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts", require(app.Feed.CreatePost)).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}", app.Feed.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", require(app.Feed.DeletePost)).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{postId}/comments", require(app.Feed.AddComment)).Methods(http.MethodPost)
	api.HandleFunc("/posts/{postId}/like", require(app.Feed.ToggleLike)).Methods(http.MethodPost)

	// Board
	api.HandleFunc("/resources", app.Board.ListResources).Methods(http.MethodGet)
	api.HandleFunc("/resources", require(app.Board.CreateResource)).Methods(http.MethodPost)
	api.HandleFunc("/events", app.Board.ListEvents).Methods(http.MethodGet)
	api.HandleFunc("/events", require(app.Board.CreateEvent)).Methods(http.MethodPost)

	// CORS sits outside the router so preflights never hit method matching
	return common.LoggingMiddleware(common.CorsMiddleware(r))
}

func health(app *Application) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := dbmysql.Ping(app.DB); err != nil {
			common.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		common.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
