package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Project struct {
	ID          primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string              `json:"title" bson:"title"`
	Description string              `json:"description" bson:"description"`
	StartDate   *time.Time          `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate     *time.Time          `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Duration    string              `json:"duration,omitempty" bson:"duration,omitempty"`
	Budget      float64             `json:"budget,omitempty" bson:"budget,omitempty"`
	ManagerID   primitive.ObjectID  `json:"managerId" bson:"managerId"`
	ClientID    *primitive.ObjectID `json:"clientId,omitempty" bson:"clientId,omitempty"`
	TeamMembers []Member            `json:"teamMembers" bson:"teamMembers"`
	CreatedAt   time.Time           `json:"createdAt" bson:"createdAt"`
}
