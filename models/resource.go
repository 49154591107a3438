package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Resource struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProjectID   string             `json:"projectId" bson:"projectId"`
	Title       string             `json:"title" bson:"title"`
	FileURL     string             `json:"fileUrl" bson:"fileUrl"`
	FileName    string             `json:"fileName" bson:"fileName"`
	ContentType string             `json:"contentType" bson:"contentType"`
	UploadedBy  string             `json:"uploadedBy" bson:"uploadedBy"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}
