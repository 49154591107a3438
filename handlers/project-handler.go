package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DXD-Magante/dxd-magnate-sub008/models"
	"github.com/DXD-Magante/dxd-magnate-sub008/services"
)

type ProjectHandler struct {
	Service *services.ProjectService
	Users   *services.UserService
}

func NewProjectHandler(service *services.ProjectService, users *services.UserService) *ProjectHandler {
	return &ProjectHandler{Service: service, Users: users}
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{models.RoleManager}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	username, err := currentUsername(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	manager, err := h.Users.GetProfile(r.Context(), username)
	if err != nil {
		http.Error(w, "Manager not found", http.StatusUnauthorized)
		return
	}

	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	project.ManagerID = manager.ID

	created, err := h.Service.CreateProject(r.Context(), project)
	if err != nil {
		if err.Error() == "project with the same title already exists" {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{models.RoleManager, models.RoleCollaborator, models.RoleClient}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	projects, err := h.Service.GetAllProjects(r.Context())
	if err != nil {
		http.Error(w, "Error fetching projects", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(projects)
}

func (h *ProjectHandler) GetProjectByID(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{models.RoleManager, models.RoleCollaborator, models.RoleClient}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	vars := mux.Vars(r)
	project, err := h.Service.GetProjectByID(r.Context(), vars["id"])
	if err != nil {
		if err.Error() == "project not found" {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, "Error fetching project", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(project)
}

func (h *ProjectHandler) AddMembersToProject(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{models.RoleManager}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	vars := mux.Vars(r)
	projectID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		http.Error(w, "Invalid project ID", http.StatusBadRequest)
		return
	}

	var memberIDs []primitive.ObjectID
	if err := json.NewDecoder(r.Body).Decode(&memberIDs); err != nil {
		http.Error(w, "Invalid members data", http.StatusBadRequest)
		return
	}

	if err := h.Service.AddMembersToProject(r.Context(), projectID, memberIDs); err != nil {
		status := addMembersStatus(err)
		if status == http.StatusInternalServerError {
			http.Error(w, "Failed to add members to project", status)
		} else {
			http.Error(w, err.Error(), status)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "Members added successfully"}`))
}

// addMembersStatus maps AddMembersToProject errors to HTTP statuses. The
// "not found" errors carry the missing member's ID, so they are matched by
// substring rather than exact text.
func addMembersStatus(err error) int {
	switch {
	case err.Error() == "all provided members are already part of the project":
		return http.StatusBadRequest
	case strings.Contains(err.Error(), "not found"):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *ProjectHandler) RemoveMemberFromProject(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{models.RoleManager}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	vars := mux.Vars(r)
	err := h.Service.RemoveMemberFromProject(r.Context(), vars["projectId"], vars["memberId"])
	if err != nil {
		switch err.Error() {
		case "cannot remove member assigned to an in-progress task":
			http.Error(w, err.Error(), http.StatusForbidden)
		case "member not found in project or already removed":
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, "Failed to remove member from project", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "Member removed successfully from project"}`))
}

func (h *ProjectHandler) GetProjectsByUsername(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{models.RoleManager, models.RoleCollaborator, models.RoleClient}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	vars := mux.Vars(r)
	username := vars["username"]
	if username == "" {
		http.Error(w, "Username is required", http.StatusBadRequest)
		return
	}

	projects, err := h.Service.GetProjectsByUsername(r.Context(), username)
	if err != nil {
		if err.Error() == "user not found" {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "Error fetching projects", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(projects)
}
