package authz

import (
	"testing"

	"learnhub/models"
)

func TestIsPermitted(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		allowed []string
		want    bool
	}{
		{"instructor in list", models.RoleInstructor, []string{models.RoleInstructor, models.RoleAdmin}, true},
		{"student not in list", models.RoleStudent, []string{models.RoleInstructor, models.RoleAdmin}, false},
		{"admin has no implicit instructor rights", models.RoleAdmin, []string{models.RoleInstructor}, false},
		{"student in student list", models.RoleStudent, []string{models.RoleStudent}, true},
		{"admin in admin list", models.RoleAdmin, []string{models.RoleAdmin}, true},
		{"empty role denied", "", []string{models.RoleStudent, models.RoleInstructor, models.RoleAdmin}, false},
		{"unknown role denied", "superuser", []string{models.RoleAdmin}, false},
		{"empty allow list denies everyone", models.RoleAdmin, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPermitted(tt.role, tt.allowed...); got != tt.want {
				t.Fatalf("IsPermitted(%q, %v) = %v, want %v", tt.role, tt.allowed, got, tt.want)
			}
		})
	}
}
