// Package handlers exposes the HTTP surface of the service. Handlers gate
// on the Role header set by the auth middleware, delegate to the services
// layer and JSON-encode the results.
package handlers

import (
	"fmt"
	"net/http"
)

func checkRole(r *http.Request, allowedRoles []string) error {
	userRole := r.Header.Get("Role")
	if userRole == "" {
		return fmt.Errorf("role is missing in request header")
	}

	for _, role := range allowedRoles {
		if role == userRole {
			return nil
		}
	}
	return fmt.Errorf("access forbidden: user does not have the required role")
}
