package handlers

import (
	"net/http"

	"learnhub/models"
	"learnhub/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService       *services.QuizService
	submissionService *services.SubmissionService
}

func NewQuizHandler(quizService *services.QuizService, submissionService *services.SubmissionService) *QuizHandler {
	return &QuizHandler{
		quizService:       quizService,
		submissionService: submissionService,
	}
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}
	courseID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req services.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz, err := h.quizService.CreateQuiz(c.Request.Context(), courseID, userID, role, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, quiz)
}

func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	courseID, ok := idParam(c, "id")
	if !ok {
		return
	}

	quizzes, err := h.quizService.ListForCourse(courseID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, quizzes)
}

func (h *QuizHandler) GetQuiz(c *gin.Context) {
	_, role, ok := caller(c)
	if !ok {
		return
	}
	quizID, ok := idParam(c, "id")
	if !ok {
		return
	}

	quiz, err := h.quizService.GetQuizForCaller(quizID, role)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}
	quizID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz, err := h.quizService.UpdateQuiz(c.Request.Context(), quizID, userID, role, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}
	quizID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.quizService.DeleteQuiz(c.Request.Context(), quizID, userID, role); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quiz deleted successfully"})
}

type submitQuizRequest struct {
	// Keys are question ids; values may be a scalar, a list, or an
	// encoded list, matching what legacy clients send.
	Answers map[string]interface{} `json:"answers"`
}

func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}
	quizID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req submitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.submissionService.GradeAndRecordSubmission(c.Request.Context(), quizID, req.Answers, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"score":      sub.MarksObtained,
		"submission": sub,
	})
}

// ListSubmissions shows students their own attempts; instructors and
// admins see everyone's.
func (h *QuizHandler) ListSubmissions(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}
	quizID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var (
		subs []models.QuizSubmission
		err  error
	)
	if role == models.RoleStudent {
		subs, err = h.submissionService.ListOwn(c.Request.Context(), quizID, userID)
	} else {
		subs, err = h.submissionService.ListForQuiz(c.Request.Context(), quizID)
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, subs)
}
