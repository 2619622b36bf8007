package match

import (
	"fmt"

	"scifoot/internal/domain"
)

// Period is the phase of a match. Finished is terminal.
type Period int

const (
	FirstHalf Period = iota
	HalfTime
	SecondHalf
	Finished
)

func (p Period) String() string {
	switch p {
	case FirstHalf:
		return "first_half"
	case HalfTime:
		return "half_time"
	case SecondHalf:
		return "second_half"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("Period(%d)", int(p))
}

type EventKind int

const (
	GoalEvent EventKind = iota
	SubstitutionEvent
	PowerUpEvent
	AbilityEvent
	YellowCardEvent
	DiscoveryEvent
	HighlightEvent
	SaveEvent
)

var eventKindNames = map[EventKind]string{
	GoalEvent:         "goal",
	SubstitutionEvent: "substitution",
	PowerUpEvent:      "power_up",
	AbilityEvent:      "ability",
	YellowCardEvent:   "yellow_card",
	DiscoveryEvent:    "discovery",
	HighlightEvent:    "highlight",
	SaveEvent:         "save",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one entry in the match log. PlayerID and AssistID are zero when
// the event is not tied to an individual player. For substitutions PlayerID
// leaves the pitch and AssistID comes on. For saves PlayerID is the keeper
// and AssistID the denied shooter.
type Event struct {
	Kind     EventKind
	Side     domain.Side
	Minute   int
	PlayerID int
	AssistID int
	Detail   string
	Bonus    float64
}

// Summary renders the event as a single log line.
func (e Event) Summary() string {
	if e.Detail == "" {
		return fmt.Sprintf("%d' %s %s", e.Minute, e.Side, e.Kind)
	}
	return fmt.Sprintf("%d' %s %s: %s", e.Minute, e.Side, e.Kind, e.Detail)
}

var goalLines = []string{
	"Superb strike from %s!",
	"%s finishes brilliantly!",
	"What a technical move by %s!",
	"%s makes no mistake!",
	"A goal for the ages from %s!",
}

var saveLines = []string{
	"%s tips it over the bar!",
	"Point-blank stop from %s!",
	"%s gets down low to smother it!",
	"Fingertip save by %s!",
}

var bookingReasons = []string{
	"Heavy tackle",
	"Dissent",
	"Time wasting",
	"Tactical foul",
}

type discovery struct {
	description string
	bonus       float64
}

var discoveries = []discovery{
	{"Molecular synergy discovered!", 0.10},
	{"Tactics optimised by algorithm!", 0.08},
	{"Explosive catalytic reaction!", 0.12},
	{"Equation of motion solved perfectly!", 0.09},
	{"Neural circuit activated!", 0.07},
}

var highlights = []string{
	"Devastating dribble!",
	"Spectacular long-range strike!",
	"Humiliating nutmeg!",
	"Precise glancing header!",
	"Technical volley!",
	"Perfect through ball!",
}
