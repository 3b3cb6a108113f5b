// Package model defines shared data structures.
package model

// EphMode selects what the EpH calculator solves for.
type EphMode string

// EpH calculator modes.
const (
	EphModeEph  EphMode = "eph"
	EphModeTime EphMode = "time"
)

// TrackMode selects the direction of a track calculation.
type TrackMode string

// Track calculator modes. An empty mode on a stored record means pace to time.
const (
	TrackModePaceToTime TrackMode = "paceToTime"
	TrackModeTimeToPace TrackMode = "timeToPace"
)

// RaceDistance names a road race distance used by the time to pace mode.
type RaceDistance string

// Supported race distances.
const (
	Distance10K          RaceDistance = "10km"
	DistanceHalfMarathon RaceDistance = "halfMarathon"
	DistanceMarathon     RaceDistance = "marathon"
)

// EphRecord is one EpH calculator history entry. Exactly one of Time and
// Eph is set, matching Mode. Numeric inputs are kept as the user typed them.
type EphRecord struct {
	Mode      EphMode `json:"mode" yaml:"mode"`
	Distance  string  `json:"distance" yaml:"distance"`
	Elevation string  `json:"elevation" yaml:"elevation"`
	Time      string  `json:"time,omitempty" yaml:"time,omitempty"`
	Eph       string  `json:"eph,omitempty" yaml:"eph,omitempty"`
	Result    string  `json:"result" yaml:"result"`
	Timestamp string  `json:"timestamp" yaml:"timestamp"`
}

// TrackRecord is one track calculator history entry.
type TrackRecord struct {
	Pace          string       `json:"pace" yaml:"pace"`
	TotalTime     string       `json:"total_time" yaml:"total_time"`
	TotalSeconds  int          `json:"total_seconds" yaml:"total_seconds"`
	Split100m     int          `json:"split_100m" yaml:"split_100m"`
	Split200m     int          `json:"split_200m" yaml:"split_200m"`
	Split300m     int          `json:"split_300m" yaml:"split_300m"`
	Split400m     int          `json:"split_400m" yaml:"split_400m"`
	Timestamp     string       `json:"timestamp" yaml:"timestamp"`
	Mode          TrackMode    `json:"mode,omitempty" yaml:"mode,omitempty"`
	Distance      RaceDistance `json:"distance,omitempty" yaml:"distance,omitempty"`
	CompletedTime string       `json:"completedTime,omitempty" yaml:"completedTime,omitempty"`
}

// Article is a remotely sourced running article. CreatedAt is nil when the
// source did not provide one.
type Article struct {
	Title     string  `json:"title" yaml:"title"`
	Content   string  `json:"content" yaml:"content"`
	CreatedAt *string `json:"created_at" yaml:"created_at"`
}

// Key returns the article identity: created_at when present, else the title.
func (a Article) Key() string {
	if a.CreatedAt != nil && *a.CreatedAt != "" {
		return *a.CreatedAt
	}
	return a.Title
}

// EventType classifies a calendar entry.
type EventType string

// Event types.
const (
	EventTypeRace     EventType = "Race"
	EventTypeTraining EventType = "Training"
	EventTypeEvent    EventType = "Event"
)

// EventDistance is the distance category of an event.
type EventDistance string

// Event distance categories. Trail Run and Other are free-form and carry a
// custom distance.
const (
	EventDistance5K           EventDistance = "5KM"
	EventDistance10K          EventDistance = "10KM"
	EventDistanceHalfMarathon EventDistance = "Half Marathon"
	EventDistanceMarathon     EventDistance = "Marathon"
	EventDistanceTrailRun     EventDistance = "Trail Run"
	EventDistanceOther        EventDistance = "Other"
)

// RaceEvent is a race or training entry. ID is assigned at creation and is
// the only stable identifier.
type RaceEvent struct {
	ID             string        `json:"id" yaml:"id"`
	EventName      string        `json:"eventName" yaml:"eventName"`
	Date           string        `json:"date" yaml:"date"`
	Type           EventType     `json:"type" yaml:"type"`
	Distance       EventDistance `json:"distance" yaml:"distance"`
	CustomDistance string        `json:"customDistance,omitempty" yaml:"customDistance,omitempty"`
	EventNotes     string        `json:"eventNotes,omitempty" yaml:"eventNotes,omitempty"`
	CreatedAt      string        `json:"createdAt" yaml:"createdAt"`
}
