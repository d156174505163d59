package components

import (
	"classroom-reservations/internal/handler"
	"classroom-reservations/internal/handler/api"
	"classroom-reservations/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewExamHandler,
		api.NewRoomHandler,
		middleware.NewAuthMiddleware,
		func(r *api.ReservationHandler, e *api.ExamHandler, rooms *api.RoomHandler) handler.Handlers {
			return handler.Handlers{Reservation: r, Exam: e, Room: rooms}
		},
	),
	fx.Invoke(handler.NewRouter),
)
