//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"classroom-reservations/internal/domain/reservation"
	"classroom-reservations/internal/domain/user"
	"classroom-reservations/internal/handler"
	"classroom-reservations/internal/handler/api"
	resdto "classroom-reservations/internal/handler/dto/response"
	"classroom-reservations/internal/handler/httperr"
	"classroom-reservations/internal/handler/middleware"
	"classroom-reservations/internal/pkg/config"
	"classroom-reservations/internal/pkg/jwt"
	"classroom-reservations/internal/usecase"
	"classroom-reservations/internal/usecase/commands"
	"classroom-reservations/internal/usecase/queries"
	"classroom-reservations/tests/common/authtest"
	"classroom-reservations/tests/common/builder"
	"classroom-reservations/tests/common/httptest"
	"classroom-reservations/tests/common/testutil"
	commandsmock "classroom-reservations/tests/mock/commands"
	queriesmock "classroom-reservations/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	mockRooms    *queriesmock.MockRoomQueries
	teacher      authtest.Caller
	director     authtest.Caller
	jwtHelper    *authtest.JWTHelper
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	cfg := config.NewTestConfig()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.mockRooms = queriesmock.NewMockRoomQueries(s.mockCtrl)

	jwtService := jwt.NewService(cfg.JWT.Secret, 0)
	authMiddleware := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwtService))
	handler.NewRouter(s.router, cfg, middleware.NewLogger(cfg.Log), handler.Handlers{
		Reservation: api.NewReservationHandler(s.mockCommands, s.mockQueries),
		Exam:        api.NewExamHandler(s.mockCommands),
		Room:        api.NewRoomHandler(s.mockRooms, s.mockQueries),
	}, authMiddleware)

	s.jwtHelper = authtest.NewJWTHelper(cfg.JWT)
	s.teacher = s.jwtHelper.NewCaller(s.T(), user.RoleTeacher)
	s.director = s.jwtHelper.NewCaller(s.T(), user.RoleDirector)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func pendingResult(kind reservation.Kind) *commands.Result {
	return &commands.Result{ID: uuid.New(), Kind: kind, Status: reservation.StatusPending}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/api/reservations"
	reqBody := builder.NewReservationBuilder().WithNotes("Taller de robótica").BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with the new id", func() {
		result := pendingResult(reservation.KindRegular)
		s.mockCommands.EXPECT().Create(gomock.Any(), s.teacher.ID, commands.CreateRegularInput{
			RoomID:    1,
			DayOfWeek: 1,
			StartTime: "16:00",
			EndTime:   "18:00",
			Notes:     reqBody.Notes,
		}).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.teacher.Token)

		var body resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.ID, body.ID)
		s.Equal("PENDING", body.Status)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/reservations/" + result.ID.String()})
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []testCaseReservation{
			{name: "missing field: roomId", mutate: testutil.Field("roomId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: dayOfWeek", mutate: testutil.Field("dayOfWeek", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: startTime", mutate: testutil.Field("startTime", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: endTime", mutate: testutil.Field("endTime", nil), expectCode: http.StatusBadRequest},
			{name: "negative roomId", mutate: testutil.Field("roomId", -3), expectCode: http.StatusBadRequest},
			{name: "notes too long", mutate: testutil.Field("notes", strings.Repeat("a", 501)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, s.teacher.Token)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 401 Unauthorized", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")

		expired := s.jwtHelper.CreateExpiredToken(s.T(), uuid.New(), user.RoleTeacher)
		rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, expired)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: maps engine errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "validation", commandsError: reservation.ErrInvalidTimeRange, expectedStatus: http.StatusBadRequest, expectedMsg: "end time must be after start time"},
			{name: "room not found", commandsError: commands.ErrRoomNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "room not found"},
			{name: "duplicate pending", commandsError: commands.ErrDuplicatePending, expectedStatus: http.StatusConflict, expectedMsg: "already pending"},
			{name: "quota", commandsError: commands.ErrQuotaExceeded, expectedStatus: http.StatusTooManyRequests, expectedMsg: "daily reservation limit"},
			{name: "unclassified", commandsError: errors.New("pool exhausted"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.teacher.Token)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 409 Conflict lists the blocking reservations", func() {
		blocking := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, &commands.ConflictError{
			RoomNumber: "101",
			Conflicts:  []commands.ConflictSlot{{ID: blocking, DayOfWeek: 1, StartTime: "17:00:00", EndTime: "19:00:00"}},
		}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.teacher.Token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "room 101 is already reserved at 17:00:00 - 19:00:00")
		var detail httperr.ConflictDetail
		httptest.AssertErrorDetail(s.T(), rec, http.StatusConflict, &detail)
		s.Require().Len(detail.Conflicts, 1)
		s.Equal(blocking, detail.Conflicts[0].ID)
		s.False(detail.OnApproval)
	})
}

// ================================================================================
// TestCreateBatch
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateBatch() {
	url := "/api/reservations/batch"
	reqBody := builder.NewReservationBuilder().BuildBatchRequestDTO(
		builder.NewReservationBuilder().WithDay(3).WithSlot("08:00", "10:00"),
	)

	s.Run("success: returns every created reservation", func() {
		results := []commands.Result{*pendingResult(reservation.KindRegular), *pendingResult(reservation.KindRegular)}
		s.mockCommands.EXPECT().CreateBatch(gomock.Any(), s.teacher.ID, gomock.Cond(func(in commands.CreateBatchInput) bool {
			return in.RoomID == 1 && len(in.Items) == 2 && in.Items[1].DayOfWeek == 3
		})).Return(results, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.teacher.Token)

		var body []resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().Len(body, 2)
		s.Equal(results[1].ID, body[1].ID)
	})

	s.Run("error: 409 names the overlapping items", func() {
		s.mockCommands.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &commands.BatchConflictError{First: 0, Second: 1}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.teacher.Token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "items 0 and 1 overlap")
		var detail httperr.BatchConflictDetail
		httptest.AssertErrorDetail(s.T(), rec, http.StatusConflict, &detail)
		s.Equal([]int{0, 1}, detail.Items)
	})

	s.Run("error: 400 when an item misses its times", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("reservations.0.startTime", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, s.teacher.Token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *ReservationHandlerTestSuite) TestApprove() {
	id := uuid.New()
	url := "/api/reservations/" + id.String() + "/approve"

	s.Run("success: directivo approves", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), id, s.director.ID).
			Return(&commands.Result{ID: id, Kind: reservation.KindExam, Status: reservation.StatusApproved}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, s.director.Token)

		var body resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("APPROVED", body.Status)
		s.Equal("exam", body.Kind)
	})

	s.Run("success: admin inherits approver rights", func() {
		admin := s.jwtHelper.NewCaller(s.T(), user.RoleAdmin)
		s.mockCommands.EXPECT().Approve(gomock.Any(), id, admin.ID).
			Return(&commands.Result{ID: id, Kind: reservation.KindRegular, Status: reservation.StatusApproved}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, admin.Token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 for docente", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, s.teacher.Token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 409 when the slot was taken after the request", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), id, s.director.ID).Return(nil, &commands.ConflictError{
			OnApproval: true,
			Conflicts:  []commands.ConflictSlot{{ID: uuid.New(), StartTime: "16:00:00", EndTime: "18:00:00"}},
		}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, s.director.Token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "conflict detected on approval")
	})

	s.Run("error: 409 when not pending, 404 when unknown", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), id, s.director.ID).Return(nil, reservation.ErrNotPending).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, s.director.Token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "only PENDING")

		s.mockCommands.EXPECT().Approve(gomock.Any(), id, s.director.ID).Return(nil, commands.ErrReservationNotFound).Times(1)
		rec = httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, s.director.Token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/reservations/abc/approve", nil, s.director.Token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *ReservationHandlerTestSuite) TestReject() {
	id := uuid.New()
	url := "/api/reservations/" + id.String() + "/reject"
	rejected := &commands.Result{ID: id, Kind: reservation.KindRegular, Status: reservation.StatusRejected}

	s.Run("success: motive is trimmed and forwarded", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), id, s.director.ID, gomock.Cond(func(m *string) bool {
			return m != nil && *m == "aula en mantenimiento"
		})).Return(rejected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"motivo": "  aula en mantenimiento "}, s.director.Token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: body is optional", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), id, s.director.ID, gomock.Nil()).Return(rejected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, s.director.Token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *ReservationHandlerTestSuite) TestCancelAndRelease() {
	id := uuid.New()

	s.Run("cancel: owner only", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, s.teacher.ID).Return(nil, reservation.ErrNotOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/reservations/"+id.String()+"/cancel", nil, s.teacher.Token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another requester")
	})

	s.Run("release: directivo frees the slot", func() {
		s.mockCommands.EXPECT().Release(gomock.Any(), id).
			Return(&commands.Result{ID: id, Kind: reservation.KindRegular, Status: reservation.StatusCanceled}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/reservations/"+id.String()+"/release", nil, s.director.Token)

		var body resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CANCELED", body.Status)
	})

	s.Run("release: forbidden for docente", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/reservations/"+id.String()+"/release", nil, s.teacher.Token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *ReservationHandlerTestSuite) TestEdit() {
	id := uuid.New()
	reqBody := builder.NewReservationBuilder().WithDay(2).WithSlot("10:00", "12:00").BuildEditRequestDTO()

	s.Run("regular edit", func() {
		s.mockCommands.EXPECT().Edit(gomock.Any(), id, s.teacher.ID, commands.EditRegularInput{
			DayOfWeek: 2, StartTime: "10:00", EndTime: "12:00",
		}).Return(pendingResult(reservation.KindRegular), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/reservations/"+id.String(), reqBody, s.teacher.Token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("exam edit", func() {
		examBody := builder.NewExamBuilder().BuildEditExamRequestDTO()
		s.mockCommands.EXPECT().EditExam(gomock.Any(), id, s.teacher.ID, gomock.Cond(func(in commands.EditExamInput) bool {
			return in.Date == "2025-03-17" && in.Subject != nil && *in.Subject == "Matemática"
		})).Return(pendingResult(reservation.KindExam), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/exam-reservations/"+id.String(), examBody, s.teacher.Token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *ReservationHandlerTestSuite) TestCreateExam() {
	reqBody := builder.NewExamBuilder().BuildCreateExamRequestDTO()

	s.Run("success", func() {
		result := pendingResult(reservation.KindExam)
		s.mockCommands.EXPECT().CreateExam(gomock.Any(), s.teacher.ID, gomock.Cond(func(in commands.CreateExamInput) bool {
			return in.RoomID == 1 && in.Date == "2025-03-17" && in.DeskGroup == nil
		})).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/exam-reservations", reqBody, s.teacher.Token)

		var body resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("exam", body.Kind)
	})

	s.Run("error: date is required", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("date", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/exam-reservations", requestMap, s.teacher.Token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestQueries
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListPending() {
	views := []*queries.ReservationView{
		builder.NewReservationBuilder().BuildView(),
		builder.NewExamBuilder().BuildView(),
	}

	s.Run("success: directivo sees both kinds", func() {
		s.mockQueries.EXPECT().ListPending(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/pending", nil, s.director.Token)

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("regular", body[0].Kind)
		s.Equal("exam", body[1].Kind)
		s.Require().NotNil(body[1].Date)
		s.Equal("2025-03-17", *body[1].Date)
		s.Equal("16:00:00", body[0].StartTime)
	})

	s.Run("error: 403 for docente", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/pending", nil, s.teacher.Token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *ReservationHandlerTestSuite) TestListMineAndGet() {
	view := builder.NewReservationBuilder().WithRequester(s.teacher.ID).BuildView()

	s.Run("mine", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.teacher.ID).Return([]*queries.ReservationView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/mine", nil, s.teacher.Token)

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(view.ID, body[0].ID)
	})

	s.Run("get by id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/"+view.ID.String(), nil, s.teacher.Token)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.RoomNumber, body.RoomNumber)
	})

	s.Run("get unknown id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/"+uuid.NewString(), nil, s.teacher.Token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestCheckAvailability() {
	s.Run("regular slot", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), queries.AvailabilityInput{
			RoomID: 4, DayOfWeek: 2, StartTime: "10:00", EndTime: "11:00",
		}).Return(&queries.AvailabilityView{Available: true, Conflicts: []*queries.ReservationView{}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/reservations/availability?roomId=4&dayOfWeek=2&startTime=10:00&endTime=11:00", nil, s.teacher.Token)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Available)
		s.NotNil(body.Conflicts)
	})

	s.Run("exam date and exclusion", func() {
		exclude := uuid.New()
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), gomock.Cond(func(in queries.AvailabilityInput) bool {
			return in.Date != nil && *in.Date == "2025-03-17" && in.ExcludeID != nil && *in.ExcludeID == exclude
		})).Return(&queries.AvailabilityView{Conflicts: []*queries.ReservationView{builder.NewExamBuilder().BuildView()}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/reservations/availability?roomId=1&date=2025-03-17&startTime=09:00&endTime=10:00&excludeId="+exclude.String(), nil, s.teacher.Token)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Available)
		s.Len(body.Conflicts, 1)
	})

	s.Run("missing room", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/reservations/availability?startTime=10:00&endTime=11:00", nil, s.teacher.Token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
