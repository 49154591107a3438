package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddMembersStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"already members", errors.New("all provided members are already part of the project"), http.StatusBadRequest},
		{"project missing", errors.New("project not found"), http.StatusNotFound},
		{"member missing", errors.New("member 507f1f77bcf86cd799439011 not found"), http.StatusNotFound},
		{"database failure", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, addMembersStatus(tt.err))
		})
	}
}

func TestCheckRole(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		allowed []string
		wantErr bool
	}{
		{"allowed role", "manager", []string{"manager"}, false},
		{"one of several", "collaborator", []string{"manager", "collaborator"}, false},
		{"wrong role", "client", []string{"manager"}, true},
		{"missing role", "", []string{"manager"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/tasks/all", nil)
			if tt.role != "" {
				req.Header.Set("Role", tt.role)
			}

			err := checkRole(req, tt.allowed)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
