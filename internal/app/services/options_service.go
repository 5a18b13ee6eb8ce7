package services

import (
	"strings"

	"github.com/dpetrov/campusreg/internal/app/models"
	"github.com/dpetrov/campusreg/internal/app/models/dto"
)

// OptionsService exposes the static form-option catalog used by clients
// to render dropdowns.
type OptionsService struct{}

// NewOptionsService creates a new options service instance
func NewOptionsService() *OptionsService {
	return &OptionsService{}
}

// GetOptions returns every selectable enum with a display label.
func (s *OptionsService) GetOptions() *dto.OptionsResponse {
	resp := &dto.OptionsResponse{}

	for _, r := range models.AllRoles {
		resp.Roles = append(resp.Roles, dto.Option{Name: labelFor(string(r)), Value: string(r)})
	}
	for _, d := range models.AllDepartments {
		resp.Departments = append(resp.Departments, dto.Option{Name: labelFor(string(d)), Value: string(d)})
	}
	for _, d := range models.AllDaysOfWeek {
		resp.DaysOfWeek = append(resp.DaysOfWeek, dto.Option{Name: labelFor(string(d)), Value: string(d)})
	}
	for _, se := range models.AllSeasons {
		resp.Seasons = append(resp.Seasons, dto.Option{Name: labelFor(string(se)), Value: string(se)})
	}

	return resp
}

// labelFor turns an enum value like COMPUTER_SCIENCE into "Computer Science".
func labelFor(value string) string {
	words := strings.Split(strings.ToLower(value), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
