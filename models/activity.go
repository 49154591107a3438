package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ActivityType string

const (
	ActivityAddMember        ActivityType = "AddMember"
	ActivityRemoveMember     ActivityType = "RemoveMember"
	ActivityCreateTask       ActivityType = "CreateTask"
	ActivityChangeTaskStatus ActivityType = "ChangeTaskStatus"
	ActivitySubmissionUpload ActivityType = "SubmissionUpload"
	ActivitySubmissionRated  ActivityType = "SubmissionRated"
	ActivityResourceUpload   ActivityType = "ResourceUpload"
)

// ProjectActivity is one entry in a project's timeline feed.
type ProjectActivity struct {
	ID           primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	ProjectID    string              `json:"projectId" bson:"projectId"`
	ActivityType ActivityType        `json:"activityType" bson:"activityType"`
	TaskID       *primitive.ObjectID `json:"taskId,omitempty" bson:"taskId,omitempty"`
	MemberID     *primitive.ObjectID `json:"memberId,omitempty" bson:"memberId,omitempty"`
	Timestamp    time.Time           `json:"timestamp" bson:"timestamp"`
	Details      string              `json:"details" bson:"details"`
}
