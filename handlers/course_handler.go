package handlers

import (
	"net/http"

	"learnhub/services"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseService *services.CourseService
}

func NewCourseHandler(courseService *services.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

func (h *CourseHandler) CreateCourse(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}

	var req services.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.courseService.CreateCourse(userID, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, course)
}

func (h *CourseHandler) ListCourses(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}

	courses, err := h.courseService.ListCourses(userID, role)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

func (h *CourseHandler) GetCourse(c *gin.Context) {
	courseID, ok := idParam(c, "id")
	if !ok {
		return
	}

	course, err := h.courseService.GetCourse(courseID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}
	courseID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.courseService.UpdateCourse(courseID, userID, role, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}
	courseID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.courseService.DeleteCourse(courseID, userID, role); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course deleted successfully"})
}

func (h *CourseHandler) CreateModule(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}
	courseID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req services.CreateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	module, err := h.courseService.CreateModule(courseID, userID, role, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, module)
}

func (h *CourseHandler) DeleteModule(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}
	moduleID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.courseService.DeleteModule(moduleID, userID, role); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Module deleted successfully"})
}

func (h *CourseHandler) CreateLesson(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}
	moduleID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req services.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lesson, err := h.courseService.CreateLesson(moduleID, userID, role, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lesson)
}

func (h *CourseHandler) DeleteLesson(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}
	lessonID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.courseService.DeleteLesson(lessonID, userID, role); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lesson deleted successfully"})
}
