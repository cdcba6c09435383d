package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	botHandler "github.com/yuehan/botboard/backend/internal/handler/bot"
	cronHandler "github.com/yuehan/botboard/backend/internal/handler/cron"
	evalHandler "github.com/yuehan/botboard/backend/internal/handler/eval"
	postHandler "github.com/yuehan/botboard/backend/internal/handler/post"
	middlewarePkg "github.com/yuehan/botboard/backend/internal/middleware"
	botModel "github.com/yuehan/botboard/backend/internal/model/bot"
	aiService "github.com/yuehan/botboard/backend/internal/service/ai"
	"github.com/yuehan/botboard/backend/internal/service/scheduler"
	"github.com/yuehan/botboard/backend/internal/storage"
)

// NewRouter wires HTTP routes to core services. aiSvc and orchestrator may be
// nil when model credentials are absent; the affected routes then report
// themselves unavailable.
func NewRouter(bots botModel.Store, store storage.Store, relations botModel.RelationSet, aiSvc *aiService.Service, orchestrator *scheduler.Orchestrator, cronSecret string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	var composer postHandler.ReplyComposer
	var evaluator evalHandler.Evaluator
	if aiSvc != nil {
		composer = aiSvc
		evaluator = aiSvc
	}

	var runner cronHandler.Runner
	if orchestrator != nil {
		runner = orchestrator
	}

	r.Route("/api", func(api chi.Router) {
		botHandler.New(bots).RegisterRoutes(api)
		postHandler.New(store, bots, relations, composer).RegisterRoutes(api)
		cronHandler.New(runner, cronSecret).RegisterRoutes(api)
		evalHandler.New(evaluator).RegisterRoutes(api)
	})

	return r
}
