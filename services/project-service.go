package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/DXD-Magante/dxd-magnate-sub008/models"
)

type ProjectService struct {
	ProjectsCollection *mongo.Collection
	TasksCollection    *mongo.Collection
	UsersCollection    *mongo.Collection
	Activity           *ActivityService
}

func NewProjectService(projectsCollection, tasksCollection, usersCollection *mongo.Collection, activity *ActivityService) *ProjectService {
	return &ProjectService{
		ProjectsCollection: projectsCollection,
		TasksCollection:    tasksCollection,
		UsersCollection:    usersCollection,
		Activity:           activity,
	}
}

// CreateProject creates a new project owned by the given manager.
func (s *ProjectService) CreateProject(ctx context.Context, project models.Project) (*models.Project, error) {
	if project.Title == "" {
		return nil, fmt.Errorf("project title is required")
	}
	if project.StartDate != nil && project.EndDate != nil && project.EndDate.Before(*project.StartDate) {
		return nil, fmt.Errorf("project end date must not precede the start date")
	}

	count, err := s.ProjectsCollection.CountDocuments(ctx, bson.M{"title": project.Title})
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing project: %v", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("project with the same title already exists")
	}

	project.ID = primitive.NewObjectID()
	project.TeamMembers = models.DedupMembers(project.TeamMembers)
	if project.TeamMembers == nil {
		project.TeamMembers = []models.Member{}
	}
	project.CreatedAt = time.Now()

	result, err := s.ProjectsCollection.InsertOne(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %v", err)
	}

	project.ID = result.InsertedID.(primitive.ObjectID)
	return &project, nil
}

// GetAllProjects returns every project document.
func (s *ProjectService) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	cursor, err := s.ProjectsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve projects: %v", err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %v", err)
	}
	return projects, nil
}

func (s *ProjectService) GetProjectByID(ctx context.Context, projectID string) (*models.Project, error) {
	objectID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return nil, fmt.Errorf("invalid project ID format")
	}

	var project models.Project
	err = s.ProjectsCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("project not found")
		}
		return nil, fmt.Errorf("error fetching project: %v", err)
	}
	return &project, nil
}

// AddMembersToProject looks the users up and pushes them onto the team
// roster, skipping anyone already on it.
func (s *ProjectService) AddMembersToProject(ctx context.Context, projectID primitive.ObjectID, memberIDs []primitive.ObjectID) error {
	var project models.Project
	if err := s.ProjectsCollection.FindOne(ctx, bson.M{"_id": projectID}).Decode(&project); err != nil {
		if err == mongo.ErrNoDocuments {
			return errors.New("project not found")
		}
		return fmt.Errorf("failed to fetch project: %v", err)
	}

	existing := make(map[primitive.ObjectID]bool, len(project.TeamMembers))
	for _, m := range project.TeamMembers {
		existing[m.ID] = true
	}

	var members []models.Member
	for _, memberID := range memberIDs {
		if existing[memberID] {
			continue
		}
		var user models.User
		if err := s.UsersCollection.FindOne(ctx, bson.M{"_id": memberID}).Decode(&user); err != nil {
			return fmt.Errorf("member %s not found", memberID.Hex())
		}
		members = append(members, models.Member{
			ID:       user.ID,
			Name:     fmt.Sprintf("%s %s", user.Name, user.LastName),
			Username: user.Username,
		})
		existing[memberID] = true
	}

	if len(members) == 0 {
		return errors.New("all provided members are already part of the project")
	}

	update := bson.M{"$push": bson.M{"teamMembers": bson.M{"$each": members}}}
	if _, err := s.ProjectsCollection.UpdateOne(ctx, bson.M{"_id": projectID}, update); err != nil {
		return fmt.Errorf("failed to add members to project: %v", err)
	}

	for _, m := range members {
		memberID := m.ID
		s.Activity.LogActivity(ctx, models.ProjectActivity{
			ProjectID:    projectID.Hex(),
			ActivityType: models.ActivityAddMember,
			MemberID:     &memberID,
			Details:      fmt.Sprintf("%s joined the project", m.Name),
		})
	}
	return nil
}

// RemoveMemberFromProject removes a member unless they still hold an
// in-progress task.
func (s *ProjectService) RemoveMemberFromProject(ctx context.Context, projectID, memberID string) error {
	projectObjectID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return errors.New("invalid project ID format")
	}
	memberObjectID, err := primitive.ObjectIDFromHex(memberID)
	if err != nil {
		return errors.New("invalid member ID format")
	}

	taskFilter := bson.M{
		"projectId":    projectID,
		"status":       models.StatusInProgress,
		"assignee._id": memberObjectID,
	}
	count, err := s.TasksCollection.CountDocuments(ctx, taskFilter)
	if err != nil {
		return errors.New("failed to check task assignments")
	}
	if count > 0 {
		return errors.New("cannot remove member assigned to an in-progress task")
	}

	update := bson.M{"$pull": bson.M{"teamMembers": bson.M{"_id": memberObjectID}}}
	result, err := s.ProjectsCollection.UpdateOne(ctx, bson.M{"_id": projectObjectID}, update)
	if err != nil {
		return errors.New("failed to remove member from project")
	}
	if result.ModifiedCount == 0 {
		return errors.New("member not found in project or already removed")
	}

	s.Activity.LogActivity(ctx, models.ProjectActivity{
		ProjectID:    projectID,
		ActivityType: models.ActivityRemoveMember,
		MemberID:     &memberObjectID,
		Details:      "member removed from the project",
	})
	return nil
}

// GetProjectsByUsername returns projects where the user is the manager or
// on the team roster.
func (s *ProjectService) GetProjectsByUsername(ctx context.Context, username string) ([]models.Project, error) {
	var user models.User
	if err := s.UsersCollection.FindOne(ctx, bson.M{"username": username}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to fetch user: %v", err)
	}

	filter := bson.M{"$or": []bson.M{
		{"managerId": user.ID},
		{"clientId": user.ID},
		{"teamMembers.username": username},
	}}

	cursor, err := s.ProjectsCollection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve projects for user: %v", err)
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %v", err)
	}
	return projects, nil
}
