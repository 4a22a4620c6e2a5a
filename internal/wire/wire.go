// internal/wire/wire.go
package wire

import (
	"net/http"
	"os"
	"path"

	"game-reviews/internal/adaptor"
	"game-reviews/internal/data/repository"
	"game-reviews/internal/usecase"
	"game-reviews/pkg/middleware"
	"game-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const msgNotFound = "Not Found"

// App holds the wired dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and the router
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigin))

	wireReview(r, handler.Review)

	r.Get("/status", handler.Status.GetStatus)

	wireStatic(r, config.App.StaticDir, logger)

	// Unknown paths and known paths with an unsupported method are both 404.
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.ResponseNotFound(w, msgNotFound)
}

// wireStatic serves files from dir when it exists. Missing files fall
// through to the JSON 404.
func wireStatic(r chi.Router, dir string, logger *zap.Logger) {
	if dir == "" {
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		logger.Debug("Static directory not found, static files disabled", zap.String("dir", dir))
		return
	}

	root := http.Dir(dir)
	fileServer := http.FileServer(root)

	r.Handle("/*", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet && req.Method != http.MethodHead {
			notFound(w, req)
			return
		}

		name := path.Clean("/" + req.URL.Path)
		info, err := statFile(root, name)
		if err == nil && info.IsDir() {
			// no directory listings, only index pages
			_, err = statFile(root, path.Join(name, "index.html"))
		}
		if err != nil {
			notFound(w, req)
			return
		}

		fileServer.ServeHTTP(w, req)
	}))

	logger.Info("Serving static files", zap.String("dir", dir))
}

func statFile(root http.FileSystem, name string) (os.FileInfo, error) {
	f, err := root.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.Stat()
}
