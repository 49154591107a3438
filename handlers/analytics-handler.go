package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/DXD-Magante/dxd-magnate-sub008/models"
	"github.com/DXD-Magante/dxd-magnate-sub008/services"
)

type AnalyticsHandler struct {
	Service  *services.AnalyticsService
	Activity *services.ActivityService
}

func NewAnalyticsHandler(service *services.AnalyticsService, activity *services.ActivityService) *AnalyticsHandler {
	return &AnalyticsHandler{Service: service, Activity: activity}
}

// GetProjectReport serves the full analytics view for one project.
func (h *AnalyticsHandler) GetProjectReport(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{models.RoleManager, models.RoleClient}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	vars := mux.Vars(r)
	report, err := h.Service.GetProjectReport(r.Context(), vars["projectId"])
	if err != nil {
		switch err.Error() {
		case "project not found":
			http.Error(w, err.Error(), http.StatusNotFound)
		case "invalid project ID format":
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Failed to compute project analytics", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// GetMemberDashboard serves the caller's personal dashboard metrics.
func (h *AnalyticsHandler) GetMemberDashboard(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{models.RoleCollaborator}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	username, err := currentUsername(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	dashboard, err := h.Service.GetMemberDashboard(r.Context(), username)
	if err != nil {
		http.Error(w, "Failed to compute dashboard metrics", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dashboard)
}

// GetProjectTimelineProgress serves the elapsed/remaining progress of a
// project's resolved date range.
func (h *AnalyticsHandler) GetProjectTimelineProgress(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{models.RoleManager, models.RoleCollaborator, models.RoleClient}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	vars := mux.Vars(r)
	progress, err := h.Service.GetProjectTimelineProgress(r.Context(), vars["projectId"])
	if err != nil {
		switch err.Error() {
		case "project not found":
			http.Error(w, err.Error(), http.StatusNotFound)
		case "invalid project ID format":
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Failed to compute timeline progress", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(progress)
}

// GetProjectTimeline serves a project's activity feed.
func (h *AnalyticsHandler) GetProjectTimeline(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{models.RoleManager, models.RoleCollaborator, models.RoleClient}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	vars := mux.Vars(r)
	activities, err := h.Activity.GetProjectTimeline(r.Context(), vars["projectId"])
	if err != nil {
		http.Error(w, "Failed to retrieve project timeline", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(activities)
}
