package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"kosmos/internal/config"
	"kosmos/internal/handler"
	"kosmos/internal/middleware"
	"kosmos/internal/websocket"
)

func New(
	cfg *config.Config,
	hub *websocket.Hub,
	scanHandler *handler.ScanHandler,
	foldersHandler *handler.FoldersHandler,
	historyHandler *handler.HistoryHandler,
	operationsHandler *handler.OperationsHandler,
	navigationHandler *handler.NavigationHandler,
	layoutHandler *handler.LayoutHandler,
	themeHandler *handler.ThemeHandler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		websocket.ServeWS(hub, w, r)
	})

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/workspace/scan", func(scan chi.Router) {
			scan.Get("/", scanHandler.Get)
			scan.Put("/", scanHandler.Put)
			scan.Delete("/", scanHandler.Delete)
			scan.Patch("/files", scanHandler.PatchFile)
			scan.Get("/summary", scanHandler.Summary)
		})

		api.Get("/folders", foldersHandler.List)
		api.Post("/folders/access", foldersHandler.TrackAccess)
		api.Get("/folders/favorites", foldersHandler.Favorites)
		api.Delete("/folders", foldersHandler.Clear)

		api.Get("/history", historyHandler.List)
		api.Post("/history", historyHandler.Add)
		api.Delete("/history/{id}", historyHandler.Remove)
		api.Delete("/history", historyHandler.Clear)

		api.Get("/operations", operationsHandler.List)
		api.Post("/operations", operationsHandler.AddResult)
		api.Delete("/operations", operationsHandler.Clear)
		api.Get("/operations/progress", operationsHandler.GetProgress)
		api.Put("/operations/progress", operationsHandler.PutProgress)

		api.Route("/navigation", func(nav chi.Router) {
			nav.Get("/", navigationHandler.Get)
			nav.Put("/folder", navigationHandler.SetFolder)
			nav.Put("/files", navigationHandler.SetFiles)
			nav.Put("/loading", navigationHandler.SetLoading)
			nav.Delete("/", navigationHandler.Clear)
		})

		api.Get("/layouts", layoutHandler.Catalog)
		api.Get("/layout", layoutHandler.Get)
		api.Put("/layout", layoutHandler.Set)
		api.Patch("/layout/panels", layoutHandler.PatchPanel)

		api.Get("/theme", themeHandler.Get)
		api.Put("/theme", themeHandler.Set)
		api.Post("/theme/toggle", themeHandler.Toggle)
	})

	return r
}
