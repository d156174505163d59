package api

import (
	"net/http"

	reqdto "classroom-reservations/internal/handler/dto/request"
	resdto "classroom-reservations/internal/handler/dto/response"
	"classroom-reservations/internal/handler/httperr"
	"classroom-reservations/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// ExamHandler covers the endpoints whose body differs for one-off exam bookings.
// Approval, rejection and cancellation go through ReservationHandler.
type ExamHandler struct {
	cmds commands.ReservationCommands
}

func NewExamHandler(cmds commands.ReservationCommands) *ExamHandler {
	return &ExamHandler{cmds: cmds}
}

// @Summary Create exam reservation
// @Description Request a room for a single date. Overlaps are checked when the request is approved.
// @Tags exam-reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateExamRequest true "Create exam reservation request"
// @Success 201 {object} resdto.TransitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/exam-reservations [post]
func (h *ExamHandler) Create(c *gin.Context) {
	requesterID, ok := callerID(c)
	if !ok {
		return
	}
	var req reqdto.CreateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateExam(c.Request.Context(), requesterID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/reservations/"+result.ID.String())
	c.JSON(http.StatusCreated, resdto.FromResult(result))
}

// @Summary Edit exam reservation
// @Tags exam-reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.EditExamRequest true "Edit exam reservation request"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/exam-reservations/{id} [put]
func (h *ExamHandler) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	requesterID, ok := callerID(c)
	if !ok {
		return
	}
	var req reqdto.EditExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.EditExam(c.Request.Context(), id, requesterID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResult(result))
}
