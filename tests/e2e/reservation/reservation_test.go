//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	stdhttptest "net/http/httptest"
	"sync"
	"testing"

	"classroom-reservations/internal/domain/user"
	"classroom-reservations/internal/handler/dto/response"
	"classroom-reservations/internal/handler/httperr"
	"classroom-reservations/tests/common/authtest"
	"classroom-reservations/tests/common/builder"
	"classroom-reservations/tests/common/dbtest"
	"classroom-reservations/tests/common/httptest"
	"classroom-reservations/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	batchURL        = "/api/reservations/batch"
	pendingURL      = "/api/reservations/pending"
	mineURL         = "/api/reservations/mine"
	examsURL        = "/api/exam-reservations"
	approveURL      = "/api/reservations/%s/approve"
	rejectURL       = "/api/reservations/%s/reject"
	cancelURL       = "/api/reservations/%s/cancel"
	releaseURL      = "/api/reservations/%s/release"
	approvedURL     = "/api/rooms/%d/reservations/approved"
	approvedExamURL = "/api/rooms/%d/exam-reservations/approved"
)

// Seeded by dbtest.SeedReferenceData after every reset.
const (
	room101 int64 = 1
	room102 int64 = 2
)

type ReservationSuite struct {
	e2e.SharedSuite
	teacher  authtest.Caller
	other    authtest.Caller
	director authtest.Caller
}

func (s *ReservationSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.teacher = s.Auth.NewCaller(s.T(), user.RoleTeacher)
	s.other = s.Auth.NewCaller(s.T(), user.RoleTeacher)
	s.director = s.Auth.NewCaller(s.T(), user.RoleDirector)
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) create(c authtest.Caller, b *builder.ReservationBuilder) response.TransitionResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, b.BuildCreateRequestDTO(), c.Token)
	var res response.TransitionResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	require.Equal(t, res.ID, httptest.LocationID(t, w))
	return res
}

func (s *ReservationSuite) approve(id string) *response.TransitionResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(approveURL, id), nil, s.director.Token)
	var res response.TransitionResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return &res
}

// =============================================================================
// TestLifecycle - create, approve, cancel and release through the API
// =============================================================================

func (s *ReservationSuite) TestLifecycle() {
	s.Run("Normal case: created reservation is pending and readable", func() {
		t := s.T()

		notes := "Taller de robótica"
		created := s.create(s.teacher, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.RoomID = room101
			b.Notes = &notes
		}))
		require.Equal(t, "PENDING", created.Status)
		require.Equal(t, "regular", created.Kind)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+created.ID.String(), nil, s.teacher.Token)
		var got response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

		expected := response.ReservationResponse{
			ID:          created.ID,
			Kind:        "regular",
			RoomID:      room101,
			RoomNumber:  "101",
			RequesterID: s.teacher.ID,
			DayOfWeek:   1,
			StartTime:   "16:00:00",
			EndTime:     "18:00:00",
			Status:      "PENDING",
			Notes:       &notes,
		}
		opts := cmpopts.IgnoreFields(response.ReservationResponse{}, "CreatedAt", "UpdatedAt")
		if diff := cmp.Diff(expected, got, opts); diff != "" {
			t.Errorf("reservation mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: approve, then list approved by room", func() {
		t := s.T()

		created := s.create(s.teacher, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.RoomID = room101 }))
		approved := s.approve(created.ID.String())
		require.Equal(t, "APPROVED", approved.Status)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(approvedURL, room101), nil, s.teacher.Token)
		var list []response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 1)
		require.NotNil(t, list[0].ApproverID)
		require.Equal(t, s.director.ID, *list[0].ApproverID)
	})

	s.Run("Normal case: owner cancels, approver releases", func() {
		t := s.T()

		first := s.create(s.teacher, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.RoomID = room101 }))
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(cancelURL, first.ID), nil, s.teacher.Token)
		var canceled response.TransitionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &canceled)
		require.Equal(t, "CANCELED", canceled.Status)

		second := s.create(s.teacher, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.RoomID = room102 }))
		s.approve(second.ID.String())
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(releaseURL, second.ID), nil, s.director.Token)
		var released response.TransitionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &released)
		require.Equal(t, "CANCELED", released.Status)

		// reservation_events keeps one row per transition
		require.Equal(t, 5, dbtest.CountRows(t, s.DB, "reservation_events"))
		require.Equal(t,
			[]string{"reservation.created", "reservation.approved", "reservation.released"},
			dbtest.EventTypes(t, s.DB, second.ID))
	})

	s.Run("Error case: another teacher cannot cancel", func() {
		t := s.T()

		created := s.create(s.teacher, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.RoomID = room101 }))
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(cancelURL, created.ID), nil, s.other.Token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("Error case: reject keeps the motive in notes and cannot be approved afterwards", func() {
		t := s.T()

		notes := "Taller"
		created := s.create(s.teacher, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.RoomID = room101
			b.Notes = &notes
		}))

		body := map[string]string{"motivo": "aula ocupada"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(rejectURL, created.ID), body, s.director.Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+created.ID.String(), nil, s.teacher.Token)
		var got response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, "REJECTED", got.Status)
		require.NotNil(t, got.Notes)
		require.Equal(t, "Taller | Motivo rechazo: aula ocupada", *got.Notes)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(approveURL, created.ID), nil, s.director.Token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})
}

// =============================================================================
// TestConflicts - overlap detection against approved reservations
// =============================================================================

func (s *ReservationSuite) TestConflicts() {
	s.Run("Error case: create overlapping an approved slot reports it", func() {
		t := s.T()

		first := s.create(s.teacher, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.RoomID = room101 }))
		s.approve(first.ID.String())

		req := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.RoomID = room101 }).
			WithSlot("17:00", "19:00").
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, req, s.other.Token)

		var detail httperr.ConflictDetail
		httptest.AssertErrorDetail(t, w, http.StatusConflict, &detail)
		require.Equal(t, "101", detail.RoomNumber)
		require.False(t, detail.OnApproval)
		require.Len(t, detail.Conflicts, 1)
		require.Equal(t, "16:00:00", detail.Conflicts[0].StartTime)
	})

	s.Run("Normal case: adjacent slots do not conflict", func() {
		first := s.create(s.teacher, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.RoomID = room101 }))
		s.approve(first.ID.String())

		s.create(s.other, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.RoomID = room101 }).WithSlot("18:00", "19:00"))
	})

	s.Run("Error case: second of two overlapping pending requests fails on approval", func() {
		t := s.T()

		a := s.create(s.teacher, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.RoomID = room101 }))
		b := s.create(s.other, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.RoomID = room101 }).WithSlot("17:30", "18:30"))

		s.approve(a.ID.String())

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(approveURL, b.ID), nil, s.director.Token)
		var detail httperr.ConflictDetail
		httptest.AssertErrorDetail(t, w, http.StatusConflict, &detail)
		require.True(t, detail.OnApproval)
	})

	s.Run("Error case: concurrent approvals of overlapping requests let exactly one through", func() {
		t := s.T()

		a := s.create(s.teacher, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.RoomID = room101 }))
		b := s.create(s.other, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.RoomID = room101 }).WithSlot("17:30", "18:30"))

		ids := []string{a.ID.String(), b.ID.String()}
		results := make([]*stdhttptest.ResponseRecorder, len(ids))
		start := make(chan struct{})
		var wg sync.WaitGroup
		for i, id := range ids {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				results[i] = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(approveURL, id), nil, s.director.Token)
			}()
		}
		close(start)
		wg.Wait()

		var approved, conflicted []*stdhttptest.ResponseRecorder
		for _, w := range results {
			switch w.Code {
			case http.StatusOK:
				approved = append(approved, w)
			case http.StatusConflict:
				conflicted = append(conflicted, w)
			default:
				t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
			}
		}
		require.Len(t, approved, 1)
		require.Len(t, conflicted, 1)

		var detail httperr.ConflictDetail
		httptest.AssertErrorDetail(t, conflicted[0], http.StatusConflict, &detail)
		require.True(t, detail.OnApproval)
		require.Len(t, detail.Conflicts, 1)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(approvedURL, room101), nil, s.teacher.Token)
		var list []response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 1)
	})

	s.Run("Error case: identical pending request from the same teacher", func() {
		t := s.T()

		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.RoomID = room101 })
		s.create(s.teacher, b)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, b.BuildCreateRequestDTO(), s.teacher.Token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already pending")
	})

	s.Run("Error case: unknown room", func() {
		t := s.T()

		req := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.RoomID = 999 }).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, req, s.teacher.Token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "room not found")
	})
}

// =============================================================================
// TestBatch - all or nothing batch creation
// =============================================================================

func (s *ReservationSuite) TestBatch() {
	s.Run("Normal case: every item is stored", func() {
		t := s.T()

		first := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.RoomID = room102 })
		second := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.DayOfWeek = 3 })

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, batchURL, first.BuildBatchRequestDTO(second), s.teacher.Token)
		var res []response.TransitionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		require.Len(t, res, 2)
		require.Equal(t, 2, dbtest.CountRows(t, s.DB, "reservations"))
	})

	s.Run("Error case: items overlapping each other roll back the batch", func() {
		t := s.T()

		first := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.RoomID = room102 })
		second := builder.NewReservationBuilder().WithSlot("17:00", "20:00")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, batchURL, first.BuildBatchRequestDTO(second), s.teacher.Token)
		var detail httperr.BatchConflictDetail
		httptest.AssertErrorDetail(t, w, http.StatusConflict, &detail)
		require.Equal(t, []int{0, 1}, detail.Items)
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "reservations"))
	})

	s.Run("Error case: one item hitting an approved slot rolls back the batch", func() {
		t := s.T()

		taken := s.create(s.other, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.RoomID = room102
			b.DayOfWeek = 5
		}))
		s.approve(taken.ID.String())

		first := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.RoomID = room102 })
		second := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.DayOfWeek = 5 })

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, batchURL, first.BuildBatchRequestDTO(second), s.teacher.Token)
		var detail httperr.ConflictDetail
		httptest.AssertErrorDetail(t, w, http.StatusConflict, &detail)
		require.Equal(t, "102", detail.RoomNumber)
		require.Len(t, detail.Conflicts, 1)
		require.Equal(t, 0, dbtest.CountReservationsOf(t, s.DB, "reservations", s.teacher.ID))
		require.Equal(t, 1, dbtest.CountReservationsOf(t, s.DB, "reservations", s.other.ID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
	})
}

// =============================================================================
// TestExams - dated exam reservations and merged listings
// =============================================================================

func (s *ReservationSuite) TestExams() {
	s.Run("Normal case: exam shows up in pending and mine, then approved by room", func() {
		t := s.T()

		s.create(s.teacher, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.RoomID = room101 }))

		exam := builder.NewExamBuilder().With(func(b *builder.ReservationBuilder) {
			b.RoomID = room101
			b.Date = "2025-03-20"
		})
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, examsURL, exam.BuildCreateExamRequestDTO(), s.teacher.Token)
		var created response.TransitionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "exam", created.Kind)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, pendingURL, nil, s.director.Token)
		var pending []response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &pending)
		require.Len(t, pending, 2)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, mineURL, nil, s.teacher.Token)
		var mine []response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &mine)
		require.Len(t, mine, 2)

		s.approve(created.ID.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(approvedExamURL, room101), nil, s.teacher.Token)
		var approved []response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &approved)
		require.Len(t, approved, 1)
		require.NotNil(t, approved[0].Date)
		require.Equal(t, "2025-03-20", *approved[0].Date)
		require.Equal(t, 4, approved[0].DayOfWeek)
	})

	s.Run("Error case: exam with no date", func() {
		t := s.T()

		req := builder.NewExamBuilder().BuildCreateExamRequestDTO()
		req.Date = ""
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, examsURL, req, s.teacher.Token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})

	s.Run("Error case: teacher cannot list pending", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, pendingURL, nil, s.teacher.Token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})
}
