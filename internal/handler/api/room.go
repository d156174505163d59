package api

import (
	"net/http"
	"strconv"

	resdto "classroom-reservations/internal/handler/dto/response"
	"classroom-reservations/internal/handler/httperr"
	"classroom-reservations/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	rooms        queries.RoomQueries
	reservations queries.ReservationQueries
}

func NewRoomHandler(rooms queries.RoomQueries, reservations queries.ReservationQueries) *RoomHandler {
	return &RoomHandler{rooms: rooms, reservations: reservations}
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RoomResponse
// @Router /api/rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.rooms.ListRooms(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(rooms))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	room, err := h.rooms.GetRoom(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(room))
}

// @Summary List approved reservations of a room
// @Description Ordered by day of week and start time.
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/rooms/{id}/reservations/approved [get]
func (h *RoomHandler) ListApproved(c *gin.Context) {
	views, err := h.reservations.ListApprovedByRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary List approved exam reservations of a room
// @Description Ordered by date and start time.
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/rooms/{id}/exam-reservations/approved [get]
func (h *RoomHandler) ListApprovedExams(c *gin.Context) {
	views, err := h.reservations.ListApprovedExamsByRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}
