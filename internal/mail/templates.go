package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"
)

// templatesFS holds the HTML email templates embedded at compile time, so the
// binary never depends on a templates directory existing at runtime.
//
//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// longDateLayout renders dates the way they appear in the confirmation email,
// e.g. "January 10, 2030".
const longDateLayout = "January 2, 2006"

// TripConfirmationParams carries everything needed to render the trip
// confirmation email sent to the owner after a trip is created.
type TripConfirmationParams struct {
	OwnerName        string
	OwnerEmail       string
	Destination      string
	StartsAt         time.Time
	EndsAt           time.Time
	ConfirmationLink string
}

// NewTripConfirmation renders the confirmation email for a newly created trip.
func NewTripConfirmation(p TripConfirmationParams) (Message, error) {
	start := p.StartsAt.Format(longDateLayout)
	end := p.EndsAt.Format(longDateLayout)

	var body bytes.Buffer
	err := templates.ExecuteTemplate(&body, "trip_confirmation.html", map[string]string{
		"Destination":      p.Destination,
		"StartDate":        start,
		"EndDate":          end,
		"ConfirmationLink": p.ConfirmationLink,
	})
	if err != nil {
		return Message{}, fmt.Errorf("mail.NewTripConfirmation: %w", err)
	}

	return Message{
		ToName:    p.OwnerName,
		ToAddress: p.OwnerEmail,
		Subject:   fmt.Sprintf("Confirm your trip to %s on %s", p.Destination, start),
		HTML:      body.String(),
	}, nil
}
