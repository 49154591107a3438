package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DXD-Magante/dxd-magnate-sub008/models"
	"github.com/DXD-Magante/dxd-magnate-sub008/services"
)

// maxUploadBytes caps multipart uploads at 32 MB.
const maxUploadBytes = 32 << 20

type SubmissionHandler struct {
	Service *services.SubmissionService
}

func NewSubmissionHandler(service *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{Service: service}
}

// CreateSubmission accepts a multipart form with the delivered file and its
// metadata, uploads the file to blob storage and records the submission.
func (h *SubmissionHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{models.RoleCollaborator}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	username, err := currentUsername(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid multipart payload", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read uploaded file", http.StatusInternalServerError)
		return
	}

	submission := models.Submission{
		ProjectID:   r.FormValue("projectId"),
		SubmittedBy: username,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}
	if taskID := r.FormValue("taskId"); taskID != "" {
		objectID, err := primitive.ObjectIDFromHex(taskID)
		if err != nil {
			http.Error(w, "Invalid task ID", http.StatusBadRequest)
			return
		}
		submission.TaskID = &objectID
	}

	created, err := h.Service.CreateSubmission(r.Context(), submission, data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// RateSubmission records a manager's or client's 1-5 star review.
func (h *SubmissionHandler) RateSubmission(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{models.RoleManager, models.RoleClient}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	vars := mux.Vars(r)
	submissionID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		http.Error(w, "Invalid submission ID", http.StatusBadRequest)
		return
	}

	var payload struct {
		Rating   float64 `json:"rating"`
		Feedback string  `json:"feedback"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	submission, err := h.Service.RateSubmission(r.Context(), submissionID, payload.Rating, payload.Feedback)
	if err != nil {
		switch err.Error() {
		case "submission not found":
			http.Error(w, err.Error(), http.StatusNotFound)
		case "rating must be between 1 and 5":
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Failed to rate submission", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(submission)
}

func (h *SubmissionHandler) GetSubmissionsByProject(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{models.RoleManager, models.RoleCollaborator, models.RoleClient}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	vars := mux.Vars(r)
	submissions, err := h.Service.GetSubmissionsByProject(r.Context(), vars["projectId"])
	if err != nil {
		http.Error(w, "Failed to retrieve submissions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(submissions)
}

func (h *SubmissionHandler) GetMySubmissions(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{models.RoleCollaborator}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	username, err := currentUsername(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	submissions, err := h.Service.GetSubmissionsBySubmitter(r.Context(), username)
	if err != nil {
		http.Error(w, "Failed to retrieve submissions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(submissions)
}
