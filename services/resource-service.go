package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DXD-Magante/dxd-magnate-sub008/models"
	"github.com/DXD-Magante/dxd-magnate-sub008/storage"
)

// ResourceService manages a project's shared resource library.
type ResourceService struct {
	ResourcesCollection *mongo.Collection
	Stores              *storage.Router
	Activity            *ActivityService
}

func NewResourceService(resourcesCollection *mongo.Collection, stores *storage.Router, activity *ActivityService) *ResourceService {
	return &ResourceService{
		ResourcesCollection: resourcesCollection,
		Stores:              stores,
		Activity:            activity,
	}
}

// AddResource uploads the file to the appropriate blob store and records
// the library entry.
func (s *ResourceService) AddResource(ctx context.Context, resource models.Resource, data []byte) (*models.Resource, error) {
	if resource.ProjectID == "" {
		return nil, fmt.Errorf("project ID is required")
	}
	if resource.Title == "" {
		return nil, fmt.Errorf("resource title is required")
	}

	store := s.Stores.StoreFor(resource.ContentType)
	fileURL, err := store.Upload(ctx, resource.FileName, resource.ContentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to upload resource file: %v", err)
	}

	resource.ID = primitive.NewObjectID()
	resource.FileURL = fileURL
	resource.CreatedAt = time.Now()

	result, err := s.ResourcesCollection.InsertOne(ctx, resource)
	if err != nil {
		return nil, fmt.Errorf("failed to save resource: %v", err)
	}
	resource.ID = result.InsertedID.(primitive.ObjectID)

	s.Activity.LogActivity(ctx, models.ProjectActivity{
		ProjectID:    resource.ProjectID,
		ActivityType: models.ActivityResourceUpload,
		Details:      fmt.Sprintf("resource '%s' added to the library", resource.Title),
	})
	return &resource, nil
}

// GetResourcesByProject lists a project's library, newest first.
func (s *ResourceService) GetResourcesByProject(ctx context.Context, projectID string) ([]models.Resource, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.ResourcesCollection.Find(ctx, bson.M{"projectId": projectID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve resources: %v", err)
	}
	defer cursor.Close(ctx)

	var resources []models.Resource
	if err := cursor.All(ctx, &resources); err != nil {
		return nil, fmt.Errorf("failed to decode resources: %v", err)
	}
	return resources, nil
}
