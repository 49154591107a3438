package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DXD-Magante/dxd-magnate-sub008/logging"
	"github.com/DXD-Magante/dxd-magnate-sub008/models"
)

// ActivityService appends and reads project timeline events.
type ActivityService struct {
	ActivitiesCollection *mongo.Collection
}

func NewActivityService(activitiesCollection *mongo.Collection) *ActivityService {
	return &ActivityService{ActivitiesCollection: activitiesCollection}
}

// LogActivity appends one event to a project's timeline. Failures are
// logged but never propagated; a missing feed entry must not fail the
// operation that produced it.
func (s *ActivityService) LogActivity(ctx context.Context, activity models.ProjectActivity) {
	activity.ID = primitive.NewObjectID()
	activity.Timestamp = time.Now()

	if _, err := s.ActivitiesCollection.InsertOne(ctx, activity); err != nil {
		logging.Logger.Errorf("Event ID: ACTIVITY_LOG_FAILED, Description: Failed to record %s activity for project %s: %v", activity.ActivityType, activity.ProjectID, err)
		return
	}
}

// GetProjectTimeline returns a project's activity feed, newest first.
func (s *ActivityService) GetProjectTimeline(ctx context.Context, projectID string) ([]models.ProjectActivity, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := s.ActivitiesCollection.Find(ctx, bson.M{"projectId": projectID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve project timeline: %v", err)
	}
	defer cursor.Close(ctx)

	var activities []models.ProjectActivity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("failed to decode project timeline: %v", err)
	}
	return activities, nil
}
