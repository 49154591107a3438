package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

type Submission struct {
	ID          primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	ProjectID   string              `json:"projectId" bson:"projectId"`
	TaskID      *primitive.ObjectID `json:"taskId,omitempty" bson:"taskId,omitempty"`
	SubmittedBy string              `json:"submittedBy" bson:"submittedBy"`
	FileURL     string              `json:"fileUrl" bson:"fileUrl"`
	FileName    string              `json:"fileName" bson:"fileName"`
	ContentType string              `json:"contentType" bson:"contentType"`
	Status      SubmissionStatus    `json:"status" bson:"status"`
	// Rating is a 1-5 star review left by the manager or client. Absent
	// means unrated; unrated submissions are excluded from quality scoring.
	Rating    *float64  `json:"rating,omitempty" bson:"rating,omitempty"`
	Feedback  string    `json:"feedback,omitempty" bson:"feedback,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
