package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/DXD-Magante/dxd-magnate-sub008/models"
	"github.com/DXD-Magante/dxd-magnate-sub008/storage"
)

type SubmissionService struct {
	SubmissionsCollection *mongo.Collection
	Stores                *storage.Router
	Activity              *ActivityService
}

func NewSubmissionService(submissionsCollection *mongo.Collection, stores *storage.Router, activity *ActivityService) *SubmissionService {
	return &SubmissionService{
		SubmissionsCollection: submissionsCollection,
		Stores:                stores,
		Activity:              activity,
	}
}

// CreateSubmission uploads the delivered file to the store matching its
// MIME class and records the submission document with the returned URL.
func (s *SubmissionService) CreateSubmission(ctx context.Context, submission models.Submission, data []byte) (*models.Submission, error) {
	if submission.ProjectID == "" {
		return nil, fmt.Errorf("project ID is required")
	}
	if submission.FileName == "" {
		return nil, fmt.Errorf("file name is required")
	}

	store := s.Stores.StoreFor(submission.ContentType)
	fileURL, err := store.Upload(ctx, submission.FileName, submission.ContentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to upload submission file: %v", err)
	}

	submission.ID = primitive.NewObjectID()
	submission.FileURL = fileURL
	submission.Status = models.SubmissionPending
	submission.Rating = nil
	submission.CreatedAt = time.Now()

	result, err := s.SubmissionsCollection.InsertOne(ctx, submission)
	if err != nil {
		return nil, fmt.Errorf("failed to save submission: %v", err)
	}
	submission.ID = result.InsertedID.(primitive.ObjectID)

	s.Activity.LogActivity(ctx, models.ProjectActivity{
		ProjectID:    submission.ProjectID,
		ActivityType: models.ActivitySubmissionUpload,
		TaskID:       submission.TaskID,
		Details:      fmt.Sprintf("submission '%s' uploaded to %s", submission.FileName, store.Name()),
	})
	return &submission, nil
}

// RateSubmission records a 1-5 star review. The rating range is enforced
// here so the metrics engine can assume validated input.
func (s *SubmissionService) RateSubmission(ctx context.Context, submissionID primitive.ObjectID, rating float64, feedback string) (*models.Submission, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	status := models.SubmissionApproved
	if rating < 3 {
		status = models.SubmissionRejected
	}

	update := bson.M{"$set": bson.M{
		"rating":   rating,
		"feedback": feedback,
		"status":   status,
	}}
	result, err := s.SubmissionsCollection.UpdateOne(ctx, bson.M{"_id": submissionID}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to rate submission: %v", err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("submission not found")
	}

	var submission models.Submission
	if err := s.SubmissionsCollection.FindOne(ctx, bson.M{"_id": submissionID}).Decode(&submission); err != nil {
		return nil, fmt.Errorf("failed to retrieve rated submission: %v", err)
	}

	s.Activity.LogActivity(ctx, models.ProjectActivity{
		ProjectID:    submission.ProjectID,
		ActivityType: models.ActivitySubmissionRated,
		TaskID:       submission.TaskID,
		Details:      fmt.Sprintf("submission '%s' rated %.0f/5", submission.FileName, rating),
	})
	return &submission, nil
}

func (s *SubmissionService) GetSubmissionsByProject(ctx context.Context, projectID string) ([]models.Submission, error) {
	cursor, err := s.SubmissionsCollection.Find(ctx, bson.M{"projectId": projectID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve submissions: %v", err)
	}
	defer cursor.Close(ctx)

	var submissions []models.Submission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, fmt.Errorf("failed to decode submissions: %v", err)
	}
	return submissions, nil
}

func (s *SubmissionService) GetSubmissionsBySubmitter(ctx context.Context, username string) ([]models.Submission, error) {
	cursor, err := s.SubmissionsCollection.Find(ctx, bson.M{"submittedBy": username})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve submissions: %v", err)
	}
	defer cursor.Close(ctx)

	var submissions []models.Submission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, fmt.Errorf("failed to decode submissions: %v", err)
	}
	return submissions, nil
}
