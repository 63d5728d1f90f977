package domain

import "time"

type Movie struct {
	ID          string
	Title       string
	DurationMin int
}

type Screen struct {
	ID    string
	Seats []Seat
}

type Theatre struct {
	ID      string
	Name    string
	Screens []Screen
}

type Show struct {
	ID        string
	MovieID   string
	TheatreID string
	ScreenID  string
	StartsAt  time.Time
	EndsAt    time.Time
}
