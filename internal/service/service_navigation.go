package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-catalog-gateway/internal/config"
	"github.com/MKhiriev/go-catalog-gateway/models"
)

type navigationService struct {
	adminRoles map[string]struct{}
}

// NewNavigationService shows the menu to the configured admin roles,
// compared case-insensitively.
func NewNavigationService(cfg config.Navigation) NavigationService {
	roles := make(map[string]struct{}, len(cfg.AdminRoles))
	for _, r := range cfg.AdminRoles {
		if r = normalizeRole(r); r != "" {
			roles[r] = struct{}{}
		}
	}
	return &navigationService{adminRoles: roles}
}

func (s *navigationService) MenuVisibility(_ context.Context, role string) models.MenuVisibility {
	_, visible := s.adminRoles[normalizeRole(role)]
	return models.MenuVisibility{Role: role, Visible: visible}
}

func normalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
