package handlers

import (
	"net/http"

	"github.com/divgaze/api/internal/api/constants"
	"github.com/divgaze/api/internal/api/dto/v1/contact"
	"github.com/divgaze/api/internal/logging"
	"github.com/divgaze/api/internal/service"
	"github.com/divgaze/api/internal/utils"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Submit handles an accepted contact form submission. Rate limiting and
// validation have already run as route middleware; what arrives here is a
// validated request that only needs sanitizing and dispatching.
func (h *ContactHandler) Submit(c *gin.Context) {
	contactData, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		h.fail(c, nil, "Contact data not found in context")
		return
	}

	contactPtr, ok := contactData.(*contact.ContactRequest)
	if !ok {
		h.fail(c, nil, "Invalid contact data format")
		return
	}

	sanitized := contactPtr.Sanitize()

	if err := h.contactService.Dispatch(c.Request.Context(), sanitized); err != nil {
		h.fail(c, err, "Failed to dispatch contact emails")
		return
	}

	c.JSON(http.StatusOK, contact.ContactResponse{
		Success: true,
		Message: "Message sent successfully",
	})
}

// fail logs the full error server-side and returns the generic failure
// body; provider details never reach the caller.
func (h *ContactHandler) fail(c *gin.Context, err error, message string) {
	logger := logging.GetGlobalLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		utils.ClientIdentifier(c),
		http.StatusInternalServerError,
		message,
		err,
	)

	c.JSON(http.StatusInternalServerError, contact.ErrorResponse{
		Error: "Failed to send message. Please try again.",
	})
}
