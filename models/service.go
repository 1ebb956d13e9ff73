package models

import "time"

// Service is a bookable offering owned by exactly one business.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	BusinessID  string    `bson:"businessId" json:"businessId"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	Duration    int       `bson:"duration" json:"duration"` // minutes
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
