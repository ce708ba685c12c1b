package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"learnhub/models"

	"github.com/gin-gonic/gin"
)

func routerWithRole(role string, set bool, allowed ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded",
		func(c *gin.Context) {
			if set {
				c.Set(ContextUserRole, role)
			}
		},
		RequireRoles(allowed...),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		},
	)
	return r
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		set        bool
		allowed    []string
		wantStatus int
	}{
		{"instructor allowed", models.RoleInstructor, true, []string{models.RoleInstructor, models.RoleAdmin}, http.StatusOK},
		{"student forbidden", models.RoleStudent, true, []string{models.RoleInstructor, models.RoleAdmin}, http.StatusForbidden},
		{"admin not implicitly instructor", models.RoleAdmin, true, []string{models.RoleInstructor}, http.StatusForbidden},
		{"no identity fails closed", "", false, []string{models.RoleStudent}, http.StatusUnauthorized},
		{"empty role denied", "", true, []string{models.RoleStudent}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := routerWithRole(tt.role, tt.set, tt.allowed...)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			r.ServeHTTP(w, req)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireRolesAbortsChain(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	reached := false
	r.GET("/guarded",
		func(c *gin.Context) { c.Set(ContextUserRole, models.RoleStudent) },
		RequireRoles(models.RoleAdmin),
		func(c *gin.Context) { reached = true },
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	if reached {
		t.Fatal("handler ran after authorization denial")
	}
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}
