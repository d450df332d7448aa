package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/example/reserva-rapida/internal/domain/reservation"
	"github.com/example/reserva-rapida/internal/metrics"
	"github.com/example/reserva-rapida/internal/rating"
	"github.com/gorilla/mux"
)

// card is a reservation as rendered in the list.
type card struct {
	reservation.Reservation
	Badge  reservation.Badge
	Action reservation.Action
}

func newCard(r reservation.Reservation) (card, error) {
	action, err := reservation.ActionFor(r.Status)
	if err != nil {
		return card{}, err
	}
	badge, err := reservation.BadgeFor(r.Status)
	if err != nil {
		return card{}, err
	}
	return card{Reservation: r, Badge: badge, Action: action}, nil
}

func (s *Server) cards(list []reservation.Reservation) []card {
	out := []card{}
	for _, r := range list {
		c, err := newCard(r)
		if err != nil {
			s.logger().Printf("web: skipping reservation %s: %v", r.ID, err)
			continue
		}
		out = append(out, c)
	}
	return out
}

func (s *Server) reservationsData(flash string) tmplData {
	active, history := reservation.Partition(s.Catalog.Reservations())
	return tmplData{
		Title:   "My reservations",
		Tab:     TabReservations,
		Flash:   flash,
		Active:  s.cards(active),
		History: s.cards(history),
	}
}

func (s *Server) handleReservations(w http.ResponseWriter, r *http.Request) {
	flash := ""
	if r.URL.Query().Get("rated") == "1" {
		flash = "Thank you! Your rating was sent."
	}
	s.render(w, r, http.StatusOK, "templates/reservations.html", s.reservationsData(flash))
}

func (s *Server) lookupCard(w http.ResponseWriter, r *http.Request) (card, bool) {
	res, err := s.Catalog.Reservation(mux.Vars(r)["id"])
	if err != nil {
		s.renderNotFound(w, r, TabReservations, "Reservation")
		return card{}, false
	}
	c, err := newCard(res)
	if err != nil {
		s.render(w, r, http.StatusUnprocessableEntity, "templates/reservations.html", s.reservationsData(flashFor(err)))
		return card{}, false
	}
	return c, true
}

func (s *Server) handleReservationDetails(w http.ResponseWriter, r *http.Request) {
	c, ok := s.lookupCard(w, r)
	if !ok {
		return
	}
	s.render(w, r, http.StatusOK, "templates/reservation.html", tmplData{
		Title:       c.Protocol,
		Tab:         TabReservations,
		Reservation: c,
	})
}

// handleCancel only asks for confirmation; reservations are never changed.
func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	c, ok := s.lookupCard(w, r)
	if !ok {
		return
	}
	prompt, err := reservation.CancelPrompt(c.Reservation)
	if err != nil {
		s.render(w, r, http.StatusUnprocessableEntity, "templates/reservations.html", s.reservationsData(flashFor(err)))
		return
	}
	s.render(w, r, http.StatusOK, "templates/cancel.html", tmplData{
		Title:       "Cancel reservation",
		Tab:         TabReservations,
		Reservation: c,
		Prompt:      prompt,
	})
}

type tagView struct {
	Name     string
	Selected bool
}

type ratingView struct {
	Form  *rating.Form
	Stars []int
	Tags  []tagView
}

func newRatingView(f *rating.Form) *ratingView {
	v := &ratingView{Form: f}
	for i := 1; i <= rating.MaxStars; i++ {
		v.Stars = append(v.Stars, i)
	}
	for _, t := range rating.Options() {
		v.Tags = append(v.Tags, tagView{Name: t, Selected: f.Selected(t)})
	}
	return v
}

// openRating resolves the reservation and its restaurant and opens the form.
func (s *Server) openRating(w http.ResponseWriter, r *http.Request) (card, *rating.Form, bool) {
	c, ok := s.lookupCard(w, r)
	if !ok {
		return card{}, nil, false
	}
	if _, err := s.Catalog.Restaurant(c.Restaurant.ID); err != nil {
		s.renderNotFound(w, r, TabReservations, "Restaurant")
		return card{}, nil, false
	}
	f, err := rating.NewForm(c.Reservation)
	if err != nil {
		s.render(w, r, http.StatusUnprocessableEntity, "templates/reservations.html", s.reservationsData(flashFor(err)))
		return card{}, nil, false
	}
	return c, f, true
}

func (s *Server) renderRating(w http.ResponseWriter, r *http.Request, status int, c card, f *rating.Form, flash string) {
	s.render(w, r, status, "templates/rate.html", tmplData{
		Title:       "Rate your experience",
		Tab:         TabReservations,
		Reservation: c,
		Rating:      newRatingView(f),
		Flash:       flash,
	})
}

func (s *Server) handleRateForm(w http.ResponseWriter, r *http.Request) {
	c, f, ok := s.openRating(w, r)
	if !ok {
		return
	}
	s.renderRating(w, r, http.StatusOK, c, f, "")
}

func (s *Server) handleRateSubmit(w http.ResponseWriter, r *http.Request) {
	c, f, ok := s.openRating(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stars := 0
	if raw := strings.TrimSpace(r.FormValue("stars")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			metrics.IncValidationFailure("rating")
			s.renderRating(w, r, http.StatusUnprocessableEntity, c, f, "Stars must be a whole number.")
			return
		}
		stars = n
	}
	if err := f.SetStars(stars); err != nil {
		s.renderRating(w, r, http.StatusUnprocessableEntity, c, f, flashFor(err))
		return
	}
	// the form carries the selected set; a repeated value must not toggle back off
	seen := map[string]bool{}
	for _, tag := range r.Form["tags"] {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		if err := f.ToggleTag(tag); err != nil {
			s.renderRating(w, r, http.StatusUnprocessableEntity, c, f, flashFor(err))
			return
		}
	}
	f.SetComment(r.FormValue("comment"))

	sub, err := f.Submit()
	if err != nil {
		metrics.IncValidationFailure("rating")
		s.renderRating(w, r, http.StatusUnprocessableEntity, c, f, flashFor(err))
		return
	}
	s.Ratings.Record(sub)
	http.Redirect(w, r, "/reservations?rated=1", http.StatusSeeOther)
}
