package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/example/reserva-rapida/internal/auth"
	"github.com/example/reserva-rapida/internal/domain/user"
	"github.com/example/reserva-rapida/internal/internaltypes"
	"github.com/gorilla/mux"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	s.render(w, r, http.StatusOK, "templates/home.html", tmplData{
		Title:       "Restaurants",
		Tab:         TabHome,
		Query:       q,
		Restaurants: s.Catalog.Search(q),
	})
}

func (s *Server) handleDetails(w http.ResponseWriter, r *http.Request) {
	rest, err := s.Catalog.Restaurant(mux.Vars(r)["id"])
	if err != nil {
		s.renderNotFound(w, r, TabHome, "Restaurant")
		return
	}
	s.render(w, r, http.StatusOK, "templates/details.html", tmplData{
		Title:      rest.Name,
		Tab:        TabHome,
		Restaurant: rest,
	})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	p := user.MockProfile
	if sess, ok := auth.SessionFromContext(r.Context()); ok && sess.Email != "" {
		p.Email = sess.Email
	}
	s.render(w, r, http.StatusOK, "templates/profile.html", tmplData{
		Title: "Profile",
		Tab:   TabProfile,
		Name:  p.Name,
		Form:  map[string]string{"email": p.Email},
	})
}

// flashFor turns an error into the message shown on the page.
func flashFor(err error) string {
	if ve, ok := internaltypes.AsValidation(err); ok {
		return ve.Message
	}
	if errors.Is(err, internaltypes.ErrNotFound) {
		return "Not found."
	}
	return "Something went wrong."
}
