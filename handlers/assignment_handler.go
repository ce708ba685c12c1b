package handlers

import (
	"net/http"

	"learnhub/services"

	"github.com/gin-gonic/gin"
)

type AssignmentHandler struct {
	assignmentService *services.AssignmentService
}

func NewAssignmentHandler(assignmentService *services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}
	courseID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req services.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.Create(courseID, userID, role, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	courseID, ok := idParam(c, "id")
	if !ok {
		return
	}

	assignments, err := h.assignmentService.ListForCourse(courseID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}
	assignmentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.assignmentService.Delete(assignmentID, userID, role); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Assignment deleted successfully"})
}

func (h *AssignmentHandler) Submit(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}
	assignmentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req services.SubmitAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.assignmentService.Submit(assignmentID, userID, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

func (h *AssignmentHandler) ListSubmissions(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}
	assignmentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	subs, err := h.assignmentService.ListSubmissions(assignmentID, userID, role)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, subs)
}

func (h *AssignmentHandler) Grade(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}
	submissionID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req services.GradeAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.assignmentService.Grade(submissionID, userID, role, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}
