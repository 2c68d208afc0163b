package models

import "time"

type Vacancy struct {
	ID           int
	Title        string
	Description  string
	CreationDate time.Time
	Visible      bool
	CityID       int
	FileID       int
}

type City struct {
	ID   int
	Name string
}
