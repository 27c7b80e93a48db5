package server

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"reactiontest/internal/config"
	"reactiontest/internal/gamedata"
	"reactiontest/internal/i18n"
	"reactiontest/internal/metrics"
	"reactiontest/internal/scheduler"
	"reactiontest/internal/sessions"
)

//go:embed templates/*.html
var templateFS embed.FS

func Run() error {
	appCfg := config.Load()

	srv := New(appCfg)
	defer srv.Sessions.Close()

	addr := "0.0.0.0:" + appCfg.Port
	fmt.Printf("Server listening on http://localhost:%s\n", appCfg.Port)
	return http.ListenAndServe(addr, srv.Routes())
}

// New wires the session store, resolver and templates from cfg.
func New(appCfg config.Config) *Server {
	var recorder *metrics.Recorder
	var observer sessions.Observer
	if appCfg.MetricsEnabled {
		recorder = metrics.NewRecorder()
		observer = recorder
	} else {
		log.Println("[Server] METRICS_ENABLED=false, /metrics disabled")
	}

	var geo i18n.CountryLookup
	if appCfg.GeoLookupURL != "" {
		geo = i18n.NewHTTPCountryLookup(appCfg.GeoLookupURL)
	} else {
		log.Println("[Server] GEO_LOOKUP_URL not set, resolving language without geolocation")
	}
	resolver := i18n.NewResolver(geo, appCfg.GeoTimeout, appCfg.Language())
	resolver.TrustProxy = appCfg.TrustProxy
	if recorder != nil {
		resolver.OnResolve = recorder.LanguageResolved
	}

	store := sessions.NewStore(scheduler.DefaultConfig(), gamedata.DefaultConfig(), appCfg.SessionTTL, observer)

	return &Server{
		Sessions: store,
		Resolver: resolver,
		Tmpl:     template.Must(template.New("").ParseFS(templateFS, "templates/*.html")),
		Metrics:  recorder,
		BaseURL:  appCfg.BaseURL,
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /{lang}", s.handleGame)
	mux.HandleFunc("POST /play/start", s.handleStart)
	mux.HandleFunc("POST /play/restart", s.handleStart)
	mux.HandleFunc("POST /play/surface", s.handleSurface)
	mux.HandleFunc("POST /play/hit/{kind}", s.handleHit)
	mux.HandleFunc("GET /play/state", s.handleState)
	mux.HandleFunc("GET /play/events", s.handleEvents)
	mux.HandleFunc("GET /play/ws", s.handleWS)
	mux.HandleFunc("GET /health", s.handleHealth)
	if s.Metrics != nil {
		mux.Handle("GET /metrics", s.Metrics.Handler())
	}
	return mux
}
