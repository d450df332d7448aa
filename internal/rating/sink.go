package rating

import (
	"log"
	"strings"

	"github.com/example/reserva-rapida/internal/metrics"
)

// LogSink receives submitted ratings. It logs the payload and keeps nothing.
type LogSink struct {
	Logger *log.Logger
}

func (s LogSink) Record(sub Submission) {
	l := s.Logger
	if l == nil {
		l = log.Default()
	}
	l.Printf("rating: submitted id=%s reservation=%s restaurant=%s stars=%d tags=%q comment=%q",
		sub.ID, sub.ReservationID, sub.RestaurantID, sub.Stars, strings.Join(sub.Tags, ","), sub.Comment)
	metrics.IncRatingSubmitted(sub.Stars)
}
