package models

import "time"

// Professional is a staff display profile belonging to one business. The
// number of professionals a business may hold is capped by its plan tier.
type Professional struct {
	ID          string    `bson:"id" json:"id"`
	BusinessID  string    `bson:"businessId" json:"businessId"`
	Name        string    `bson:"name" json:"name"`
	Level       string    `bson:"level" json:"level"`
	Description string    `bson:"description" json:"description"`
	PhotoURL    string    `bson:"photoUrl" json:"photoUrl"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
