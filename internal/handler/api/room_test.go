//go:build unit

package api_test

import (
	"net/http"

	resdto "classroom-reservations/internal/handler/dto/response"
	"classroom-reservations/internal/usecase/queries"
	"classroom-reservations/tests/common/builder"
	"classroom-reservations/tests/common/httptest"

	"go.uber.org/mock/gomock"
)

func (s *ReservationHandlerTestSuite) TestRooms() {
	room := &queries.RoomView{ID: 1, Number: "101", Location: "Edificio A", Capacity: 30, HasProjector: true, Status: "available"}

	s.Run("list", func() {
		s.mockRooms.EXPECT().ListRooms(gomock.Any()).Return([]*queries.RoomView{room}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms", nil, s.teacher.Token)

		var body []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(*room, queries.RoomView(body[0]))
	})

	s.Run("get", func() {
		s.mockRooms.EXPECT().GetRoom(gomock.Any(), int64(1)).Return(room, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/1", nil, s.teacher.Token)

		var body resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.HasProjector)
	})

	s.Run("get unknown room", func() {
		s.mockRooms.EXPECT().GetRoom(gomock.Any(), int64(77)).Return(nil, queries.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/77", nil, s.teacher.Token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "room not found")
	})

	s.Run("get with non numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/aula", nil, s.teacher.Token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("approved reservations of a room", func() {
		approved := builder.NewReservationBuilder().WithStatus("APPROVED").BuildView()
		s.mockQueries.EXPECT().ListApprovedByRoom(gomock.Any(), "1").Return([]*queries.ReservationView{approved}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/1/reservations/approved", nil, s.teacher.Token)

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("APPROVED", body[0].Status)
	})

	s.Run("approved exams with invalid room id", func() {
		s.mockQueries.EXPECT().ListApprovedExamsByRoom(gomock.Any(), "x1").Return(nil, queries.ErrRoomIDInvalid).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/x1/exam-reservations/approved", nil, s.teacher.Token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "roomId must be numeric")
	})
}
