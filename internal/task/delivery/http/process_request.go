package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task.delivery.http.processParseReq: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processParseDateReq(c *gin.Context) (parseDateReq, error) {
	var req parseDateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task.delivery.http.processParseDateReq: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task.delivery.http.processCreateReq: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task.delivery.http.processListReq: %v", err)
		return req, errWrongQuery
	}
	return req, nil
}

func (h *handler) processDetailReq(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}
