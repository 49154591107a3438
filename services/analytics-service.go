package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/DXD-Magante/dxd-magnate-sub008/metrics"
	"github.com/DXD-Magante/dxd-magnate-sub008/models"
)

// AnalyticsService fetches the raw records for a project or a member and
// runs the metrics engine over them. All derivation lives in the metrics
// package; this service only queries and assembles.
type AnalyticsService struct {
	ProjectsCollection    *mongo.Collection
	TasksCollection       *mongo.Collection
	SubmissionsCollection *mongo.Collection
}

func NewAnalyticsService(projectsCollection, tasksCollection, submissionsCollection *mongo.Collection) *AnalyticsService {
	return &AnalyticsService{
		ProjectsCollection:    projectsCollection,
		TasksCollection:       tasksCollection,
		SubmissionsCollection: submissionsCollection,
	}
}

// MemberDashboard is the personal dashboard payload for one collaborator.
type MemberDashboard struct {
	Username       string                  `json:"username"`
	Tasks          metrics.TaskStats       `json:"tasks"`
	Timeliness     metrics.TimelinessStats `json:"timeliness"`
	QualityPercent int                     `json:"qualityPercent"`
	Performance    metrics.Performance     `json:"performance"`
}

// GetProjectReport computes the full analytics view for one project.
func (s *AnalyticsService) GetProjectReport(ctx context.Context, projectID string) (*metrics.ProjectReport, error) {
	objectID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return nil, fmt.Errorf("invalid project ID format")
	}

	var project models.Project
	if err := s.ProjectsCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&project); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("project not found")
		}
		return nil, fmt.Errorf("error fetching project: %v", err)
	}

	tasks, err := s.fetchTasks(ctx, bson.M{"projectId": projectID})
	if err != nil {
		return nil, err
	}
	submissions, err := s.fetchSubmissions(ctx, bson.M{"projectId": projectID})
	if err != nil {
		return nil, err
	}

	report := metrics.BuildProjectReport(project, tasks, submissions, time.Now())
	return &report, nil
}

// GetMemberDashboard computes the personal dashboard for one collaborator.
// Quality merges the ratings of the member's task-level and project-level
// submissions into a single pool before scoring.
func (s *AnalyticsService) GetMemberDashboard(ctx context.Context, username string) (*MemberDashboard, error) {
	tasks, err := s.fetchTasks(ctx, bson.M{"assignee.username": username})
	if err != nil {
		return nil, err
	}
	submissions, err := s.fetchSubmissions(ctx, bson.M{"submittedBy": username})
	if err != nil {
		return nil, err
	}

	var taskSubs, projectSubs []models.Submission
	for _, sub := range submissions {
		if sub.TaskID != nil {
			taskSubs = append(taskSubs, sub)
		} else {
			projectSubs = append(projectSubs, sub)
		}
	}

	now := time.Now()
	dashboard := MemberDashboard{
		Username:       username,
		Tasks:          metrics.AggregateTasks(tasks, now),
		Timeliness:     metrics.EvaluateTimeliness(tasks),
		QualityPercent: metrics.QualityScore(metrics.Ratings(taskSubs), metrics.Ratings(projectSubs)),
	}
	dashboard.Performance = metrics.ScorePerformance(
		dashboard.Tasks.CompletionPercent,
		dashboard.QualityPercent,
		dashboard.Timeliness.TimelinessPercent,
	)
	return &dashboard, nil
}

// GetProjectTimelineProgress resolves the project's date range and computes
// elapsed/remaining progress against it.
func (s *AnalyticsService) GetProjectTimelineProgress(ctx context.Context, projectID string) (*metrics.TimelineProgress, error) {
	objectID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return nil, fmt.Errorf("invalid project ID format")
	}

	var project models.Project
	if err := s.ProjectsCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&project); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("project not found")
		}
		return nil, fmt.Errorf("error fetching project: %v", err)
	}

	start, end := metrics.ResolveRange(project.StartDate, project.EndDate, project.Duration)
	progress := metrics.ComputeTimelineProgress(start, end, time.Now())
	return &progress, nil
}

func (s *AnalyticsService) fetchTasks(ctx context.Context, filter bson.M) ([]models.Task, error) {
	cursor, err := s.TasksCollection.Find(ctx, filter)
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

func (s *AnalyticsService) fetchSubmissions(ctx context.Context, filter bson.M) ([]models.Submission, error) {
	cursor, err := s.SubmissionsCollection.Find(ctx, filter)
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
