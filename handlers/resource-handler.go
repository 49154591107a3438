package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/DXD-Magante/dxd-magnate-sub008/models"
	"github.com/DXD-Magante/dxd-magnate-sub008/services"
)

type ResourceHandler struct {
	Service *services.ResourceService
}

func NewResourceHandler(service *services.ResourceService) *ResourceHandler {
	return &ResourceHandler{Service: service}
}

// AddResource uploads a file into a project's resource library.
func (h *ResourceHandler) AddResource(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{models.RoleManager, models.RoleCollaborator}); err != nil {
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

	resource := models.Resource{
		ProjectID:   r.FormValue("projectId"),
		Title:       r.FormValue("title"),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		UploadedBy:  username,
	}

	created, err := h.Service.AddResource(r.Context(), resource, data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *ResourceHandler) GetResourcesByProject(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{models.RoleManager, models.RoleCollaborator, models.RoleClient}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	vars := mux.Vars(r)
	resources, err := h.Service.GetResourcesByProject(r.Context(), vars["projectId"])
	if err != nil {
		http.Error(w, "Failed to retrieve resources", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resources)
}
