package models

import "time"

// Business is the subscribing tenant: owner identity plus the public profile
// and scheduling configuration shown on the booking page.
type Business struct {
	ID           string `bson:"id" json:"id"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	TokenHash    string `bson:"tokenHash,omitempty" json:"-"`

	BusinessName string   `bson:"businessName" json:"businessName"`
	Phone        string   `bson:"phone" json:"phone"`
	CEP          string   `bson:"cep" json:"cep"`
	Address      string   `bson:"address" json:"address"`
	Description  string   `bson:"description" json:"description"`
	Gallery      []string `bson:"gallery" json:"gallery"`
	Amenities    []string `bson:"amenities" json:"amenities"`

	WorkingDays []string `bson:"workingDays" json:"workingDays"`
	OpenTime    string   `bson:"openTime" json:"openTime"`
	CloseTime   string   `bson:"closeTime" json:"closeTime"`

	LunchBreak bool     `bson:"lunchBreak" json:"lunchBreak"`
	LunchStart string   `bson:"lunchStart" json:"lunchStart"`
	LunchEnd   string   `bson:"lunchEnd" json:"lunchEnd"`
	LunchDays  []string `bson:"lunchDays" json:"lunchDays"`

	ExtraBreak      bool     `bson:"extraBreak" json:"extraBreak"`
	ExtraBreakStart string   `bson:"extraBreakStart" json:"extraBreakStart"`
	ExtraBreakEnd   string   `bson:"extraBreakEnd" json:"extraBreakEnd"`
	ExtraBreakDays  []string `bson:"extraBreakDays" json:"extraBreakDays"`

	// Hours is the formatted weekly schedule materialized on settings save
	// for display on the public page.
	Hours []DayHours `bson:"hours" json:"hours"`

	// Plan holds the raw stored tier; resolve it with PlanTierOrStart.
	Plan string `bson:"plan,omitempty" json:"plan"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DayHours is one row of the formatted weekly schedule.
type DayHours struct {
	Day  string `bson:"day" json:"day"`
	Time string `bson:"time" json:"time"`
}

// dayKeys maps time.Weekday (Sunday == 0) to the stored day identifiers.
var dayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// DayKey returns the stored identifier for a date's weekday.
func DayKey(t time.Time) string {
	return dayKeys[int(t.Weekday())]
}

// WeekDay pairs a stored day identifier with its display name, Monday first
// to match the public schedule layout.
type WeekDay struct {
	Key  string
	Name string
}

// Week lists the seven days in display order.
var Week = []WeekDay{
	{Key: "mon", Name: "Monday"},
	{Key: "tue", Name: "Tuesday"},
	{Key: "wed", Name: "Wednesday"},
	{Key: "thu", Name: "Thursday"},
	{Key: "fri", Name: "Friday"},
	{Key: "sat", Name: "Saturday"},
	{Key: "sun", Name: "Sunday"},
}

// PublicBusinessProfile is the unauthenticated view of a business served to
// the public booking page.
type PublicBusinessProfile struct {
	ID           string     `json:"id"`
	BusinessName string     `json:"businessName"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address"`
	Description  string     `json:"description"`
	Gallery      []string   `json:"gallery"`
	Amenities    []string   `json:"amenities"`
	Hours        []DayHours `json:"hours"`
	Plan         PlanTier   `json:"plan"`
	Blocked      bool       `json:"blocked"`
	Services     []Service  `json:"services"`
}
