package handlers

import (
	"net/http"

	"learnhub/services"

	"github.com/gin-gonic/gin"
)

type ForumHandler struct {
	forumService *services.ForumService
}

func NewForumHandler(forumService *services.ForumService) *ForumHandler {
	return &ForumHandler{forumService: forumService}
}

func (h *ForumHandler) CreateThread(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}
	courseID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req services.CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	thread, err := h.forumService.CreateThread(courseID, userID, role, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, thread)
}

func (h *ForumHandler) ListThreads(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}
	courseID, ok := idParam(c, "id")
	if !ok {
		return
	}

	threads, err := h.forumService.ListThreads(courseID, userID, role)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, threads)
}

func (h *ForumHandler) CreatePost(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}
	threadID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req services.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.forumService.CreatePost(threadID, userID, role, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *ForumHandler) ListPosts(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}
	threadID, ok := idParam(c, "id")
	if !ok {
		return
	}

	posts, err := h.forumService.ListPosts(threadID, userID, role)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}
