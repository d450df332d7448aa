package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/example/reserva-rapida/internal/internaltypes"
	"github.com/example/reserva-rapida/internal/metrics"
	"github.com/example/reserva-rapida/internal/wizard"
	"github.com/gorilla/mux"
	"github.com/gorilla/securecookie"
)

const wizardCookie = "reservarapida_wizard"

// WizardStore keeps one booking attempt per browser in a signed cookie, the
// way a navigation stack keeps route params. It is dropped on exit or logout.
type WizardStore struct {
	sc *securecookie.SecureCookie
}

type wizardValue struct {
	State   wizard.State
	Booking *wizard.Booking
}

func NewWizardStore(hashKey, blockKey []byte) *WizardStore {
	return &WizardStore{sc: securecookie.New(hashKey, blockKey)}
}

func (ws *WizardStore) load(r *http.Request) (wizardValue, bool) {
	c, err := r.Cookie(wizardCookie)
	if err != nil {
		return wizardValue{}, false
	}
	var v wizardValue
	if err := ws.sc.Decode(wizardCookie, c.Value, &v); err != nil {
		return wizardValue{}, false
	}
	return v, true
}

func (ws *WizardStore) save(w http.ResponseWriter, r *http.Request, v wizardValue) error {
	encoded, err := ws.sc.Encode(wizardCookie, v)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     wizardCookie,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})
	return nil
}

func (ws *WizardStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     wizardCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// stateAt returns the attempt rewound to step, or false when the browser has
// not reached that step yet or the attempt is already confirmed.
func (s *Server) stateAt(r *http.Request, step wizard.Step) (wizard.State, bool) {
	v, ok := s.Wizard.load(r)
	if !ok || v.State.Step < step || v.State.Step == wizard.StepConfirmation {
		return wizard.State{}, false
	}
	if v.State.Step == step {
		return v.State, true
	}
	st, err := wizard.Back(v.State, step)
	if err != nil {
		return wizard.State{}, false
	}
	return st, true
}

func (s *Server) stepData(st wizard.State) (tmplData, error) {
	rest, err := s.Catalog.Restaurant(st.RestaurantID)
	if err != nil {
		return tmplData{}, err
	}
	return tmplData{
		Tab:        TabHome,
		Restaurant: rest,
		Wizard:     st,
	}, nil
}

func (s *Server) renderDateTime(w http.ResponseWriter, r *http.Request, status int, st wizard.State, date, tm, flash string) {
	data, err := s.stepData(st)
	if err != nil {
		s.renderNotFound(w, r, TabHome, "Restaurant")
		return
	}
	data.Title = "Book"
	data.Days = wizard.DateWindow(s.now())
	data.Slots = wizard.TimeSlots()
	if date == "" && len(data.Days) > 0 {
		date = data.Days[0].Date
	}
	data.Form = map[string]string{"date": date, "time": tm}
	data.Flash = flash
	s.render(w, r, status, "templates/book_datetime.html", data)
}

func (s *Server) handleDateTimeForm(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := s.Catalog.Restaurant(id); err != nil {
		s.renderNotFound(w, r, TabHome, "Restaurant")
		return
	}
	st := wizard.Start(id)
	if err := s.Wizard.save(w, r, wizardValue{State: st}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.renderDateTime(w, r, http.StatusOK, st, "", "", "")
}

func (s *Server) handleDateTimeSubmit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	st, ok := s.stateAt(r, wizard.StepSelectDateTime)
	if !ok || st.RestaurantID != id {
		st = wizard.Start(id)
	}
	date, tm := r.FormValue("date"), r.FormValue("time")

	next, err := wizard.SelectDateTime(st, wizard.DateWindow(s.now()), wizard.DateTimeInput{Date: date, Time: tm})
	if err != nil {
		metrics.IncValidationFailure(wizard.StepSelectDateTime.String())
		s.renderDateTime(w, r, http.StatusUnprocessableEntity, st, date, tm, flashFor(err))
		return
	}
	if err := s.Wizard.save(w, r, wizardValue{State: next}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/book/party", http.StatusSeeOther)
}

func (s *Server) renderParty(w http.ResponseWriter, r *http.Request, status int, st wizard.State, size, flash string) {
	data, err := s.stepData(st)
	if err != nil {
		s.renderNotFound(w, r, TabHome, "Restaurant")
		return
	}
	data.Title = "Party size"
	data.Sizes = wizard.PartySizes()
	data.Form = map[string]string{"party_size": size}
	data.Flash = flash
	s.render(w, r, status, "templates/book_party.html", data)
}

func (s *Server) handlePartyForm(w http.ResponseWriter, r *http.Request) {
	st, ok := s.stateAt(r, wizard.StepSelectPartySize)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	size := ""
	if st.PartySize > 0 {
		size = strconv.Itoa(st.PartySize)
	}
	s.renderParty(w, r, http.StatusOK, st, size, "")
}

func (s *Server) handlePartySubmit(w http.ResponseWriter, r *http.Request) {
	st, ok := s.stateAt(r, wizard.StepSelectPartySize)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	raw := strings.TrimSpace(r.FormValue("party_size"))
	size := 0
	if raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.renderParty(w, r, http.StatusUnprocessableEntity, st, raw, "Party size must be a whole number.")
			return
		}
		size = n
	}

	next, err := wizard.SelectPartySize(st, size)
	if err != nil {
		metrics.IncValidationFailure(wizard.StepSelectPartySize.String())
		s.renderParty(w, r, http.StatusUnprocessableEntity, st, raw, flashFor(err))
		return
	}
	if err := s.Wizard.save(w, r, wizardValue{State: next}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/book/review", http.StatusSeeOther)
}

func (s *Server) handleReviewForm(w http.ResponseWriter, r *http.Request) {
	st, ok := s.stateAt(r, wizard.StepReview)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	data, err := s.stepData(st)
	if err != nil {
		s.renderNotFound(w, r, TabHome, "Restaurant")
		return
	}
	data.Title = "Review"
	data.Form = map[string]string{"notes": ""}
	s.render(w, r, http.StatusOK, "templates/book_review.html", data)
}

func (s *Server) handleReviewSubmit(w http.ResponseWriter, r *http.Request) {
	st, ok := s.stateAt(r, wizard.StepReview)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	booking, err := wizard.Review(st, s.Catalog, r.FormValue("notes"))
	if errors.Is(err, internaltypes.ErrNotFound) {
		s.renderNotFound(w, r, TabHome, "Restaurant")
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	st.Step = wizard.StepConfirmation
	if err := s.Wizard.save(w, r, wizardValue{State: st, Booking: &booking}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	metrics.IncBookingConfirmed(booking.Restaurant.ID)
	s.logger().Printf("web: booking confirmed restaurant=%s date=%s time=%s party=%d",
		booking.Restaurant.ID, booking.Date, booking.Time, booking.PartySize)
	http.Redirect(w, r, "/book/confirmation", http.StatusSeeOther)
}

func (s *Server) handleConfirmation(w http.ResponseWriter, r *http.Request) {
	v, ok := s.Wizard.load(r)
	if !ok || v.State.Step != wizard.StepConfirmation || v.Booking == nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	s.render(w, r, http.StatusOK, "templates/book_confirmation.html", tmplData{
		Title:        "Success",
		Tab:          TabHome,
		Confirmation: wizard.Confirm(*v.Booking),
	})
}

// handleExit leaves the confirmation screen. Both exits discard the attempt;
// the reservations exit also lands on the reservations tab.
func (s *Server) handleExit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	exit, err := wizard.ParseExit(r.FormValue("to"))
	if err != nil {
		http.Error(w, flashFor(err), http.StatusBadRequest)
		return
	}
	s.Wizard.Clear(w)
	metrics.IncWizardExit(string(exit))

	switch exit {
	case wizard.ExitReservations:
		http.Redirect(w, r, "/reservations", http.StatusSeeOther)
	default:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
