package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/contact"
)

// InboxHandler exposes contact messages and newsletter subscribers to the owner.
type InboxHandler struct {
	contact *contact.Service
	log     *zap.Logger
}

func NewInboxHandler(contact *contact.Service, log *zap.Logger) *InboxHandler {
	return &InboxHandler{contact: contact, log: log}
}

func (h *InboxHandler) Messages(c *gin.Context) {
	unread := boolQuery(c, "unread")
	list, err := h.contact.Messages(c.Request.Context(), unread != nil && *unread)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *InboxHandler) MarkRead(c *gin.Context) {
	msg, err := h.contact.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, msg)
}

func (h *InboxHandler) DeleteMessage(c *gin.Context) {
	if err := h.contact.DeleteMessage(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InboxHandler) Subscribers(c *gin.Context) {
	list, err := h.contact.Subscribers(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}
