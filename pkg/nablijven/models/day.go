// Package models defines the records produced by the workbook import.
package models

// Day is a weekday label on which detention sessions take place.
type Day string

const (
	// Maandag is Monday.
	Maandag Day = "MAANDAG"
	// Dinsdag is Tuesday.
	Dinsdag Day = "DINSDAG"
	// Donderdag is Thursday.
	Donderdag Day = "DONDERDAG"
)
