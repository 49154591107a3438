package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/DXD-Magante/dxd-magnate-sub008/models"
)

type TaskService struct {
	TasksCollection *mongo.Collection
	UsersCollection *mongo.Collection
	Activity        *ActivityService
}

func NewTaskService(tasksCollection, usersCollection *mongo.Collection, activity *ActivityService) *TaskService {
	return &TaskService{
		TasksCollection: tasksCollection,
		UsersCollection: usersCollection,
		Activity:        activity,
	}
}

// CreateTask inserts a new task. Status defaults to Backlog and priority to
// Medium when the caller leaves them empty.
func (s *TaskService) CreateTask(ctx context.Context, task models.Task) (*models.Task, error) {
	if task.ProjectID == "" {
		return nil, fmt.Errorf("project ID is required")
	}
	if task.Title == "" {
		return nil, fmt.Errorf("task title is required")
	}

	if task.Status == "" {
		task.Status = models.StatusBacklog
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if !task.Status.Valid() {
		return nil, fmt.Errorf("unknown task status: %s", task.Status)
	}
	if !task.Priority.Valid() {
		return nil, fmt.Errorf("unknown task priority: %s", task.Priority)
	}

	task.ID = primitive.NewObjectID()
	task.CreatedAt = time.Now()
	task.UpdatedAt = nil
	task.CompletedAt = nil

	result, err := s.TasksCollection.InsertOne(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %v", err)
	}
	task.ID = result.InsertedID.(primitive.ObjectID)

	taskID := task.ID
	s.Activity.LogActivity(ctx, models.ProjectActivity{
		ProjectID:    task.ProjectID,
		ActivityType: models.ActivityCreateTask,
		TaskID:       &taskID,
		Details:      fmt.Sprintf("task '%s' created", task.Title),
	})
	return &task, nil
}

func (s *TaskService) GetAllTasks(ctx context.Context) ([]models.Task, error) {
	cursor, err := s.TasksCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tasks: %v", err)
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %v", err)
	}
	return tasks, nil
}

func (s *TaskService) GetTasksByProjectID(ctx context.Context, projectID string) ([]models.Task, error) {
	cursor, err := s.TasksCollection.Find(ctx, bson.M{"projectId": projectID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tasks for project: %v", err)
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %v", err)
	}
	return tasks, nil
}

func (s *TaskService) GetTasksByAssignee(ctx context.Context, username string) ([]models.Task, error) {
	cursor, err := s.TasksCollection.Find(ctx, bson.M{"assignee.username": username})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tasks for assignee: %v", err)
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %v", err)
	}
	return tasks, nil
}

// ChangeTaskStatus moves a task to the given status. Completion is stamped
// when the task reaches Done and cleared again if it is reopened, so the
// timeliness metrics always see a real completion timestamp.
func (s *TaskService) ChangeTaskStatus(ctx context.Context, taskID primitive.ObjectID, status models.TaskStatus) (*models.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown task status: %s", status)
	}

	var task models.Task
	if err := s.TasksCollection.FindOne(ctx, bson.M{"_id": taskID}).Decode(&task); err != nil {
		return nil, fmt.Errorf("task not found: %v", err)
	}

	now := time.Now()
	set := bson.M{"status": status, "updatedAt": now}
	unset := bson.M{}
	if status == models.StatusDone {
		set["completedAt"] = now
	} else if task.CompletedAt != nil {
		unset["completedAt"] = ""
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	result, err := s.TasksCollection.UpdateOne(ctx, bson.M{"_id": taskID}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update task status: %v", err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("task not found for update")
	}

	if err := s.TasksCollection.FindOne(ctx, bson.M{"_id": taskID}).Decode(&task); err != nil {
		return nil, fmt.Errorf("failed to retrieve updated task: %v", err)
	}

	s.Activity.LogActivity(ctx, models.ProjectActivity{
		ProjectID:    task.ProjectID,
		ActivityType: models.ActivityChangeTaskStatus,
		TaskID:       &taskID,
		Details:      fmt.Sprintf("task '%s' moved to %s", task.Title, status),
	})
	return &task, nil
}

// AssignMember sets the task's assignee to the given user.
func (s *TaskService) AssignMember(ctx context.Context, taskID, memberID primitive.ObjectID) (*models.Task, error) {
	var user models.User
	if err := s.UsersCollection.FindOne(ctx, bson.M{"_id": memberID}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("member not found")
		}
		return nil, fmt.Errorf("failed to fetch member: %v", err)
	}

	assignee := models.Member{
		ID:       user.ID,
		Name:     fmt.Sprintf("%s %s", user.Name, user.LastName),
		Username: user.Username,
	}

	now := time.Now()
	update := bson.M{"$set": bson.M{"assignee": assignee, "updatedAt": now}}
	result, err := s.TasksCollection.UpdateOne(ctx, bson.M{"_id": taskID}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to assign member: %v", err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("task not found")
	}

	var task models.Task
	if err := s.TasksCollection.FindOne(ctx, bson.M{"_id": taskID}).Decode(&task); err != nil {
		return nil, fmt.Errorf("failed to retrieve updated task: %v", err)
	}
	return &task, nil
}
