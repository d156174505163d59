package api

import (
	"net/http"

	reqdto "classroom-reservations/internal/handler/dto/request"
	resdto "classroom-reservations/internal/handler/dto/response"
	"classroom-reservations/internal/handler/httperr"
	"classroom-reservations/internal/handler/middleware"
	"classroom-reservations/internal/pkg/errs"
	"classroom-reservations/internal/usecase/commands"
	"classroom-reservations/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoCaller = errs.New("authenticated caller missing from context")

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Request a weekly recurring slot. The reservation starts PENDING.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Create reservation request"
// @Success 201 {object} resdto.TransitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	requesterID, ok := callerID(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), requesterID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/reservations/"+result.ID.String())
	c.JSON(http.StatusCreated, resdto.FromResult(result))
}

// @Summary Create reservations in batch
// @Description Create several weekly slots for one room atomically. Any failure rolls back the whole batch.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBatchRequest true "Batch request"
// @Success 201 {array} resdto.TransitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/reservations/batch [post]
func (h *ReservationHandler) CreateBatch(c *gin.Context) {
	requesterID, ok := callerID(c)
	if !ok {
		return
	}
	var req reqdto.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	results, err := h.cmds.CreateBatch(c.Request.Context(), requesterID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res := make([]*resdto.TransitionResponse, len(results))
	for i := range results {
		res[i] = resdto.FromResult(&results[i])
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Edit reservation
// @Description Change day, times or notes of an own PENDING or APPROVED reservation. It goes back to PENDING.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.EditReservationRequest true "Edit request"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id} [put]
func (h *ReservationHandler) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	requesterID, ok := callerID(c)
	if !ok {
		return
	}
	var req reqdto.EditReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Edit(c.Request.Context(), id, requesterID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResult(result))
}

// @Summary Approve reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/approve [patch]
func (h *ReservationHandler) Approve(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	approverID, ok := callerID(c)
	if !ok {
		return
	}
	result, err := h.cmds.Approve(c.Request.Context(), id, approverID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResult(result))
}

// @Summary Reject reservation
// @Description The optional motive is appended to the reservation notes.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RejectRequest false "Rejection motive"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/reject [patch]
func (h *ReservationHandler) Reject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	approverID, ok := callerID(c)
	if !ok {
		return
	}
	var req reqdto.RejectRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	result, err := h.cmds.Reject(c.Request.Context(), id, approverID, req.GetMotive())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResult(result))
}

// @Summary Cancel reservation
// @Description Requesters cancel their own PENDING or APPROVED reservations.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/cancel [patch]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	requesterID, ok := callerID(c)
	if !ok {
		return
	}
	result, err := h.cmds.Cancel(c.Request.Context(), id, requesterID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResult(result))
}

// @Summary Release reservation
// @Description Approvers free an APPROVED slot.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/release [patch]
func (h *ReservationHandler) Release(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	result, err := h.cmds.Release(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResult(result))
}

// @Summary List pending reservations
// @Description Regular and exam requests awaiting a decision, oldest first.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Router /api/reservations/pending [get]
func (h *ReservationHandler) ListPending(c *gin.Context) {
	views, err := h.q.ListPending(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary List own reservations
// @Description Both kinds for the caller, newest first.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Router /api/reservations/mine [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	requesterID, ok := callerID(c)
	if !ok {
		return
	}
	views, err := h.q.ListMine(c.Request.Context(), requesterID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Check availability
// @Description Lists approved reservations overlapping the slot. Passing date checks exam reservations on that day.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param roomId query int true "Room ID"
// @Param dayOfWeek query int false "ISO day of week (1=Monday)"
// @Param date query string false "Exam date (YYYY-MM-DD)"
// @Param startTime query string true "Start time (HH:MM)"
// @Param endTime query string true "End time (HH:MM)"
// @Param excludeId query string false "Reservation to ignore"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservations/availability [get]
func (h *ReservationHandler) CheckAvailability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.q.CheckAvailability(c.Request.Context(), q.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(view))
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func callerID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoCaller, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return id, true
}
