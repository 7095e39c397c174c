package domain

import "time"

// BusinessInfoID the business profile is a single row
const BusinessInfoID = 1

// BusinessInfo public profile of the business
type BusinessInfo struct {
	ID                  int
	Name                string
	Description         *string
	BackgroundImagePath *string
	UpdatedAt           time.Time
}
