package web

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/example/reserva-rapida/internal/auth"
	"github.com/example/reserva-rapida/internal/catalog"
	"github.com/example/reserva-rapida/internal/domain/restaurant"
	"github.com/example/reserva-rapida/internal/metrics"
	"github.com/example/reserva-rapida/internal/rating"
	"github.com/example/reserva-rapida/internal/wizard"
	"github.com/gorilla/mux"
)

//go:embed templates/*.html static/*
var fs embed.FS

type Server struct {
	Auth    *auth.Store
	Wizard  *WizardStore
	Catalog *catalog.Catalog
	Ratings rating.LogSink

	// Now drives the date window; defaults to time.Now.
	Now    func() time.Time
	Logger *log.Logger

	BaseURL string
}

// Tabs of the main flow.
const (
	TabHome         = "home"
	TabReservations = "reservations"
	TabProfile      = "profile"
)

type tmplData struct {
	Title string
	Tab   string
	Flash string
	Email string

	// Form echoes submitted values back into the page.
	Form map[string]string

	Query       string
	Restaurants []restaurant.Restaurant
	Restaurant  restaurant.Restaurant

	Days         []wizard.Day
	Slots        []string
	Sizes        []int
	Wizard       wizard.State
	Confirmation wizard.Confirmation

	Active      []card
	History     []card
	Reservation card
	Prompt      string

	Rating *ratingView

	Name string
}

func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.Use(requestLogger(s.logger()))

	r.PathPrefix("/static/").Handler(http.FileServer(http.FS(fs)))

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Handle("/metrics", metrics.Handler())

	// auth flow
	r.Handle("/login", s.Auth.RedirectIfAuthenticated(http.HandlerFunc(s.handleLogin))).Methods(http.MethodGet, http.MethodPost)
	r.Handle("/signup", s.Auth.RedirectIfAuthenticated(http.HandlerFunc(s.handleSignup))).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/logout", s.handleLogout).Methods(http.MethodPost)

	// main flow
	m := r.NewRoute().Subrouter()
	m.Use(s.Auth.RequireAuth)

	m.HandleFunc("/", s.handleHome).Methods(http.MethodGet)
	m.HandleFunc("/restaurants/{id}", s.handleDetails).Methods(http.MethodGet)

	m.HandleFunc("/restaurants/{id}/book", s.handleDateTimeForm).Methods(http.MethodGet)
	m.HandleFunc("/restaurants/{id}/book", s.handleDateTimeSubmit).Methods(http.MethodPost)
	m.HandleFunc("/book/party", s.handlePartyForm).Methods(http.MethodGet)
	m.HandleFunc("/book/party", s.handlePartySubmit).Methods(http.MethodPost)
	m.HandleFunc("/book/review", s.handleReviewForm).Methods(http.MethodGet)
	m.HandleFunc("/book/review", s.handleReviewSubmit).Methods(http.MethodPost)
	m.HandleFunc("/book/confirmation", s.handleConfirmation).Methods(http.MethodGet)
	m.HandleFunc("/book/exit", s.handleExit).Methods(http.MethodPost)

	m.HandleFunc("/reservations", s.handleReservations).Methods(http.MethodGet)
	m.HandleFunc("/reservations/{id}", s.handleReservationDetails).Methods(http.MethodGet)
	m.HandleFunc("/reservations/{id}/cancel", s.handleCancel).Methods(http.MethodPost)
	m.HandleFunc("/reservations/{id}/rate", s.handleRateForm).Methods(http.MethodGet)
	m.HandleFunc("/reservations/{id}/rate", s.handleRateSubmit).Methods(http.MethodPost)

	m.HandleFunc("/profile", s.handleProfile).Methods(http.MethodGet)

	return r
}

func (s *Server) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Server) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.Default()
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data tmplData) {
	if sess, ok := auth.SessionFromContext(r.Context()); ok {
		data.Email = sess.Email
	}
	t, err := template.ParseFS(fs,
		"templates/base.html",
		name,
	)
	if err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		http.Error(w, "render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// renderNotFound is the explicit state for ids absent from the catalog.
func (s *Server) renderNotFound(w http.ResponseWriter, r *http.Request, tab, what string) {
	s.render(w, r, http.StatusNotFound, "templates/notfound.html", tmplData{
		Title: "Not found",
		Tab:   tab,
		Flash: what + " not found.",
	})
}

func Start(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	log.Printf("web: listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
