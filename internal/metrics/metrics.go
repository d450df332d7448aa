package metrics

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "reservarapida"

var (
	once sync.Once

	sessionTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_transitions_total",
			Help:      "Count of session gate transitions by kind.",
		},
		[]string{"kind"},
	)

	validationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Count of blocked actions by screen.",
		},
		[]string{"screen"},
	)

	bookingsConfirmed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_confirmed_total",
			Help:      "Count of bookings that reached the confirmation screen.",
		},
		[]string{"restaurant"},
	)

	wizardExits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wizard_exits_total",
			Help:      "Count of confirmation exits by target.",
		},
		[]string{"target"},
	)

	ratingsSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ratings_submitted_total",
			Help:      "Count of submitted ratings by stars.",
		},
		[]string{"stars"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(sessionTransitions, validationFailures, bookingsConfirmed, wizardExits, ratingsSubmitted)
	})
}

// Handler serves the registered metrics.
func Handler() http.Handler {
	Register()
	return promhttp.Handler()
}

func IncLogin()  { sessionTransitions.WithLabelValues("login").Inc() }
func IncLogout() { sessionTransitions.WithLabelValues("logout").Inc() }

func IncValidationFailure(screen string) {
	validationFailures.WithLabelValues(screen).Inc()
}

func IncBookingConfirmed(restaurantID string) {
	bookingsConfirmed.WithLabelValues(restaurantID).Inc()
}

func IncWizardExit(target string) {
	wizardExits.WithLabelValues(target).Inc()
}

func IncRatingSubmitted(stars int) {
	ratingsSubmitted.WithLabelValues(strconv.Itoa(stars)).Inc()
}
