package gcalendar

import "time"

const defaultCalendarID = "primary"

// Config locates the Google credentials used by New.
type Config struct {
	CredentialsPath string // service account or OAuth desktop-app JSON
	TokenPath       string // OAuth token, only read for desktop-app credentials
}

// CreateEventRequest is the input for creating a calendar event.
type CreateEventRequest struct {
	CalendarID  string // empty means "primary"
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "America/New_York"
}

// Event is a created calendar event.
type Event struct {
	ID       string
	Summary  string
	HTMLLink string
	Start    time.Time
	End      time.Time
}
