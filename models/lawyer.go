package models

import "time"

var Specializations = []string{
	"Criminal Law",
	"Civil Law",
	"Family Law",
	"Corporate Law",
	"Property Law",
	"Constitutional Law",
	"Tax Law",
	"Labor Law",
	"Intellectual Property",
	"Environmental Law",
	"Banking Law",
	"Real Estate Law",
}

var Languages = []string{
	"English",
	"Hindi",
	"Tamil",
	"Telugu",
	"Kannada",
	"Malayalam",
	"Bengali",
	"Marathi",
	"Gujarati",
	"Punjabi",
	"Urdu",
	"Sanskrit",
}

type Location struct {
	City    string `bson:"city" json:"city" validate:"required"`
	State   string `bson:"state" json:"state" validate:"required"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	Pincode string `bson:"pincode,omitempty" json:"pincode,omitempty"`
}

type DayAvailability struct {
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"`
	StartTime   string `bson:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime     string `bson:"endTime,omitempty" json:"endTime,omitempty"`
}

type WeeklyAvailability struct {
	Monday    DayAvailability `bson:"monday" json:"monday"`
	Tuesday   DayAvailability `bson:"tuesday" json:"tuesday"`
	Wednesday DayAvailability `bson:"wednesday" json:"wednesday"`
	Thursday  DayAvailability `bson:"thursday" json:"thursday"`
	Friday    DayAvailability `bson:"friday" json:"friday"`
	Saturday  DayAvailability `bson:"saturday" json:"saturday"`
	Sunday    DayAvailability `bson:"sunday" json:"sunday"`
}

// DefaultAvailability is weekdays on, weekends off.
func DefaultAvailability() WeeklyAvailability {
	on := DayAvailability{IsAvailable: true}
	return WeeklyAvailability{Monday: on, Tuesday: on, Wednesday: on, Thursday: on, Friday: on}
}

type Education struct {
	Degree      string `bson:"degree" json:"degree"`
	Institution string `bson:"institution" json:"institution"`
	Year        int    `bson:"year" json:"year"`
}

// LawyerRating is the materialized view of a lawyer's reviews. Only the rating aggregator writes it.
type LawyerRating struct {
	Average    float64   `bson:"average" json:"average"`
	Count      int       `bson:"count" json:"count"`
	ComputedAt time.Time `bson:"computedAt,omitempty" json:"-"`
}

type LawyerProfile struct {
	ID                 string             `bson:"id" json:"id"`
	UserID             string             `bson:"userId" json:"userId"`
	BarCouncilNumber   string             `bson:"barCouncilNumber" json:"barCouncilNumber" validate:"required"`
	Qualification      string             `bson:"qualification" json:"qualification" validate:"required"`
	Specializations    []string           `bson:"specializations" json:"specializations" validate:"dive,specialization"`
	Experience         int                `bson:"experience" json:"experience" validate:"gte=0"`
	Languages          []string           `bson:"languages" json:"languages" validate:"dive,language"`
	Location           Location           `bson:"location" json:"location"`
	ConsultationFee    float64            `bson:"consultationFee" json:"consultationFee" validate:"gte=0"`
	ConsultationModes  []string           `bson:"consultationModes" json:"consultationModes" validate:"dive,consultationtype"`
	Availability       WeeklyAvailability `bson:"availability" json:"availability"`
	Bio                string             `bson:"bio,omitempty" json:"bio,omitempty" validate:"max=1000"`
	Achievements       []string           `bson:"achievements,omitempty" json:"achievements,omitempty"`
	Education          []Education        `bson:"education,omitempty" json:"education,omitempty"`
	IsVerified         bool               `bson:"isVerified" json:"isVerified"`
	IsActive           bool               `bson:"isActive" json:"isActive"`
	Rating             LawyerRating       `bson:"rating" json:"rating"`
	TotalConsultations int                `bson:"totalConsultations" json:"totalConsultations"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`

	// Score is the text relevance of a text-mode search hit; never persisted.
	Score float64 `bson:"score,omitempty" json:"score,omitempty"`
}

// Listed reports whether the profile may be shown to public callers.
func (p *LawyerProfile) Listed() bool {
	return p.IsActive && p.IsVerified
}
