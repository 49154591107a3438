package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DXD-Magante/dxd-magnate-sub008/handlers"
	"github.com/DXD-Magante/dxd-magnate-sub008/logging"
	"github.com/DXD-Magante/dxd-magnate-sub008/middleware"
	"github.com/DXD-Magante/dxd-magnate-sub008/services"
	"github.com/DXD-Magante/dxd-magnate-sub008/storage"
	"github.com/DXD-Magante/dxd-magnate-sub008/utils"
)

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Role")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func newStoreBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})
}

func main() {
	logging.InitLogger()

	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting collab backend...")
	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_WARNING, Description: No .env file loaded: %v", err)
	}

	mongoURI := os.Getenv("MONGO_URI")
	mongoDBName := os.Getenv("MONGO_DB_NAME")
	if mongoURI == "" || mongoDBName == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: MONGO_URI and MONGO_DB_NAME must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for MongoDB failed: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		logging.Logger.Fatalf("Event ID: DB_PING_FAILED, Description: MongoDB connection ping error: %v", err)
	}
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB at %s.", mongoURI)

	db := client.Database(mongoDBName)
	usersCollection := db.Collection("users")
	projectsCollection := db.Collection("projects")
	tasksCollection := db.Collection("tasks")
	submissionsCollection := db.Collection("submissions")
	resourcesCollection := db.Collection("resources")
	activitiesCollection := db.Collection("activities")

	httpClient := utils.NewHTTPClient()
	stores := &storage.Router{
		Media: storage.NewHTTPStore("media-store", os.Getenv("MEDIA_STORE_URL"), httpClient, newStoreBreaker("MediaStoreCB")),
		Docs:  storage.NewHTTPStore("doc-store", os.Getenv("DOC_STORE_URL"), httpClient, newStoreBreaker("DocStoreCB")),
	}

	activityService := services.NewActivityService(activitiesCollection)
	userService := services.NewUserService(usersCollection)
	projectService := services.NewProjectService(projectsCollection, tasksCollection, usersCollection, activityService)
	taskService := services.NewTaskService(tasksCollection, usersCollection, activityService)
	submissionService := services.NewSubmissionService(submissionsCollection, stores, activityService)
	resourceService := services.NewResourceService(resourcesCollection, stores, activityService)
	analyticsService := services.NewAnalyticsService(projectsCollection, tasksCollection, submissionsCollection)

	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService, userService)
	taskHandler := handlers.NewTaskHandler(taskService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	resourceHandler := handlers.NewResourceHandler(resourceService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, activityService)

	r := mux.NewRouter()

	// Public auth routes
	r.HandleFunc("/api/auth/register", userHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", userHandler.Login).Methods(http.MethodPost)

	// Everything below requires a valid session token
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.JWTAuthMiddleware)

	api.HandleFunc("/users/profile", userHandler.GetProfile).Methods(http.MethodGet)
	api.HandleFunc("/users/profile", userHandler.UpdateProfile).Methods(http.MethodPut)
	api.HandleFunc("/users/{username}", userHandler.GetProfileByUsername).Methods(http.MethodGet)

	api.HandleFunc("/projects", projectHandler.CreateProject).Methods(http.MethodPost)
	api.HandleFunc("/projects/all", projectHandler.ListProjects).Methods(http.MethodGet)
	api.HandleFunc("/projects/user/{username}", projectHandler.GetProjectsByUsername).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}", projectHandler.GetProjectByID).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}/members", projectHandler.AddMembersToProject).Methods(http.MethodPost)
	api.HandleFunc("/projects/{projectId}/members/{memberId}", projectHandler.RemoveMemberFromProject).Methods(http.MethodDelete)

	api.HandleFunc("/tasks", taskHandler.CreateTask).Methods(http.MethodPost)
	api.HandleFunc("/tasks/all", taskHandler.GetAllTasks).Methods(http.MethodGet)
	api.HandleFunc("/tasks/mine", taskHandler.GetMyTasks).Methods(http.MethodGet)
	api.HandleFunc("/tasks/status", taskHandler.ChangeTaskStatus).Methods(http.MethodPost)
	api.HandleFunc("/tasks/project/{projectId}", taskHandler.GetTasksByProjectID).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{taskId}/assign", taskHandler.AssignMember).Methods(http.MethodPost)

	api.HandleFunc("/submissions", submissionHandler.CreateSubmission).Methods(http.MethodPost)
	api.HandleFunc("/submissions/mine", submissionHandler.GetMySubmissions).Methods(http.MethodGet)
	api.HandleFunc("/submissions/project/{projectId}", submissionHandler.GetSubmissionsByProject).Methods(http.MethodGet)
	api.HandleFunc("/submissions/{id}/rate", submissionHandler.RateSubmission).Methods(http.MethodPost)

	api.HandleFunc("/resources", resourceHandler.AddResource).Methods(http.MethodPost)
	api.HandleFunc("/resources/project/{projectId}", resourceHandler.GetResourcesByProject).Methods(http.MethodGet)

	api.HandleFunc("/analytics/project/{projectId}", analyticsHandler.GetProjectReport).Methods(http.MethodGet)
	api.HandleFunc("/analytics/project/{projectId}/timeline", analyticsHandler.GetProjectTimelineProgress).Methods(http.MethodGet)
	api.HandleFunc("/analytics/project/{projectId}/activity", analyticsHandler.GetProjectTimeline).Methods(http.MethodGet)
	api.HandleFunc("/analytics/dashboard", analyticsHandler.GetMemberDashboard).Methods(http.MethodGet)

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: SERVER_PORT is not set in the environment variables.")
	}

	serverAddress := fmt.Sprintf(":%s", serverPort)
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", serverAddress)

	if err := http.ListenAndServe(serverAddress, enableCORS(r)); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}
