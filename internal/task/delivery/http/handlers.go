package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-task-assistant/internal/middleware"
	pkgErrors "campus-task-assistant/pkg/errors"
	"campus-task-assistant/pkg/response"
)

// Parse godoc
// @Summary     Parse a task from free text
// @Description Extracts title, assignees, due-date phrase, priority and subtasks. The due date is returned verbatim; resolve it with /dates/parse.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   false "Caller id forwarded by the gateway"
// @Param       body      body   parseReq true  "Free text, roster and timezone"
// @Success     200 {object} parseResp
// @Failure     400 {object} parseResp "Empty or invalid input"
// @Failure     422 {object} parseResp "Model output did not match the task schema"
// @Failure     429 {object} parseResp "Rate limited"
// @Failure     502 {object} parseResp "Parser unavailable"
// @Failure     503 {object} parseResp "Parser misconfigured"
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		h.parseError(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, middleware.GetScope(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		h.parseError(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusOK, h.newParseResp(output))
}

// parseError writes the {success:false, error} envelope.
func (h *handler) parseError(c *gin.Context, err error) {
	httpErr := pkgErrors.AsHTTPError(err)
	msg := httpErr.Message
	if httpErr == pkgErrors.ErrInternalServerError {
		msg = response.DefaultErrorMessage
	}
	c.JSON(httpErr.Code, parseResp{Success: false, Error: msg})
}

// ParseDate godoc
// @Summary     Resolve a due-date phrase
// @Description Resolves phrases such as "next Friday" or "03/15/2024" to a 17:00 deadline in the caller's timezone.
// @Tags        Dates
// @Accept      json
// @Produce     json
// @Param       body body parseDateReq true "Phrase and timezone"
// @Success     200 {object} dueDateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Phrase not recognized"
// @Router      /api/v1/dates/parse [POST]
func (h *handler) ParseDate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseDateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ResolveDueDate(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ResolveDueDate: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newDueDateResp(output))
}

// Create godoc
// @Summary     Create a task from free text
// @Description Parses the text, resolves the due date and assignees, and stores the task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    false "Caller id forwarded by the gateway"
// @Param       body      body   createReq true  "Organization, free text, members and timezone"
// @Success     201 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Model output did not match the task schema"
// @Failure     429 {object} response.Resp "Rate limited"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, middleware.GetScope(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns the tasks of an organization, newest first.
// @Tags        Tasks
// @Produce     json
// @Param       organization_id query string true  "Organization ID"
// @Param       limit           query int    false "Page size (default: 20, max: 100)"
// @Param       offset          query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, middleware.GetScope(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task by its ID.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processDetailReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Detail(ctx, middleware.GetScope(ctx), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}
