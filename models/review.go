package models

import (
	"time"

	"lexconnect/utils"
)

// Consultation types a review may reference. Lawyers offer the same set as consultation modes.
const (
	ConsultationCall  = "Call"
	ConsultationText  = "Text"
	ConsultationVideo = "Video Chat"
)

var ConsultationTypes = []string{ConsultationCall, ConsultationText, ConsultationVideo}

const MaxCommentLength = 500

func init() {
	utils.RegisterEnum("consultationtype", ConsultationTypes)
	utils.RegisterEnum("specialization", Specializations)
	utils.RegisterEnum("language", Languages)
}

type Review struct {
	ID               string    `bson:"id" json:"id"`
	LawyerID         string    `bson:"lawyerId" json:"lawyerId"`
	AuthorID         string    `bson:"authorId" json:"authorId,omitempty"`
	Rating           int       `bson:"rating" json:"rating"`
	Comment          string    `bson:"comment" json:"comment"`
	ConsultationType string    `bson:"consultationType" json:"consultationType"`
	IsAnonymous      bool      `bson:"isAnonymous" json:"isAnonymous"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Public hides the author of an anonymous review.
func (r Review) Public() Review {
	if r.IsAnonymous {
		r.AuthorID = ""
	}
	return r
}

// ReviewInput is what a client submits to create a review. The author comes from the acting identity.
type ReviewInput struct {
	LawyerID         string `json:"lawyerId" validate:"required"`
	Rating           int    `json:"rating" validate:"required,min=1,max=5"`
	Comment          string `json:"comment" validate:"required,max=500"`
	ConsultationType string `json:"consultationType" validate:"required,consultationtype"`
	IsAnonymous      bool   `json:"isAnonymous"`
}

// ReviewPatch holds the author-mutable fields of a review; nil fields are left untouched.
type ReviewPatch struct {
	Rating           *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment          *string `json:"comment" validate:"omitempty,min=1,max=500"`
	ConsultationType *string `json:"consultationType" validate:"omitempty,consultationtype"`
	IsAnonymous      *bool   `json:"isAnonymous"`
}

// Apply copies the set fields of p onto r and reports whether the rating changed.
func (p ReviewPatch) Apply(r *Review) (ratingChanged bool) {
	if p.Rating != nil {
		ratingChanged = *p.Rating != r.Rating
		r.Rating = *p.Rating
	}
	if p.Comment != nil {
		r.Comment = *p.Comment
	}
	if p.ConsultationType != nil {
		r.ConsultationType = *p.ConsultationType
	}
	if p.IsAnonymous != nil {
		r.IsAnonymous = *p.IsAnonymous
	}
	return ratingChanged
}

type ReviewPage struct {
	Reviews    []Review   `json:"reviews"`
	Pagination Pagination `json:"pagination"`
}

// ReviewReport is a moderation flag raised against a review.
type ReviewReport struct {
	ID         string    `bson:"id" json:"id"`
	ReviewID   string    `bson:"reviewId" json:"reviewId"`
	ReporterID string    `bson:"reporterId" json:"reporterId"`
	Reason     string    `bson:"reason" json:"reason"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// RatingStats is computed directly from the review rows, bypassing the cached profile rating.
type RatingStats struct {
	LawyerID     string      `json:"lawyerId"`
	Count        int         `json:"totalReviews"`
	Sum          int         `json:"-"`
	Average      float64     `json:"exactAverage"`
	Distribution map[int]int `json:"ratingDistribution"`
}

// NewRatingStats returns empty stats with every star bucket present.
func NewRatingStats(lawyerID string) *RatingStats {
	return &RatingStats{
		LawyerID:     lawyerID,
		Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
}

// Add folds n ratings of the given star value into the stats.
func (s *RatingStats) Add(rating, n int) {
	s.Distribution[rating] += n
	s.Count += n
	s.Sum += rating * n
	if s.Count > 0 {
		s.Average = float64(s.Sum) / float64(s.Count)
	}
}
