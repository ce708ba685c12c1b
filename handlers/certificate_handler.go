package handlers

import (
	"net/http"

	"learnhub/services"

	"github.com/gin-gonic/gin"
)

type CertificateHandler struct {
	certificateService *services.CertificateService
}

func NewCertificateHandler(certificateService *services.CertificateService) *CertificateHandler {
	return &CertificateHandler{certificateService: certificateService}
}

func (h *CertificateHandler) Issue(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}
	courseID, ok := idParam(c, "id")
	if !ok {
		return
	}

	cert, err := h.certificateService.Issue(courseID, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cert)
}

func (h *CertificateHandler) ListOwn(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}

	certs, err := h.certificateService.ListForUser(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, certs)
}

// Verify is unauthenticated so anyone holding a serial can check it.
func (h *CertificateHandler) Verify(c *gin.Context) {
	serial := c.Param("serial")
	if serial == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing serial"})
		return
	}

	cert, err := h.certificateService.Verify(serial)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, cert)
}
