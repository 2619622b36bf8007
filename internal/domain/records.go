package domain

import "time"

// MatchRecord is a finished match as stored in the archive.
type MatchRecord struct {
	ID              string
	HomeTeam        string
	AwayTeam        string
	HomeScore       int
	AwayScore       int
	DurationSeconds float64
	Seed            int64
	FinishedAt      time.Time
	Events          []EventRecord
}

// EventRecord is one archived match event. Zero player ids are stored as NULL.
type EventRecord struct {
	Seq      int
	Kind     string
	Side     string
	Minute   int
	PlayerID int
	AssistID int
	Detail   string
}

// TeamRecord is a team's persisted season tally.
type TeamRecord struct {
	TeamID       int
	Name         string
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	UpdatedAt    time.Time
}
