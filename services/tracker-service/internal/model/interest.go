package model

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type OpportunityType string

const (
	OpportunityTypeHackathon OpportunityType = "hackathon"
	OpportunityTypeContest   OpportunityType = "contest"
)

// DefaultPlatform is stored when an interest is added without a platform.
const DefaultPlatform = "unknown"

var ErrInvalidOpportunityType = errors.New("opportunity type must be hackathon or contest")

func ParseOpportunityType(s string) (OpportunityType, error) {
	switch t := OpportunityType(strings.ToLower(strings.TrimSpace(s))); t {
	case OpportunityTypeHackathon, OpportunityTypeContest:
		return t, nil
	default:
		return "", ErrInvalidOpportunityType
	}
}

// InterestKey identifies an interest within one user's collection.
type InterestKey struct {
	OpportunityID   string
	OpportunityType OpportunityType
}

// Interest is a user's bookmark on an external opportunity.
type Interest struct {
	ID              bson.ObjectID   `bson:"_id,omitempty"`
	OpportunityID   string          `bson:"opportunity_id"`
	OpportunityType OpportunityType `bson:"opportunity_type"`
	OpportunityName string          `bson:"opportunity_name"`
	Platform        string          `bson:"platform"`
	Link            string          `bson:"link"`
	Deadline        *time.Time      `bson:"deadline,omitempty"`
	AddedAt         time.Time       `bson:"added_at"`
}

func (i Interest) Key() InterestKey {
	return InterestKey{OpportunityID: i.OpportunityID, OpportunityType: i.OpportunityType}
}

type InterestSet = KeyedCollection[InterestKey, Interest]

func NewInterestSet(items []Interest) *InterestSet {
	return NewKeyedCollection[InterestKey](items)
}
