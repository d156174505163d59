package response

import (
	"classroom-reservations/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID           int64  `json:"id"`
	Number       string `json:"number"`
	Location     string `json:"location"`
	Capacity     int    `json:"capacity"`
	Computers    int    `json:"computers"`
	HasProjector bool   `json:"hasProjector"`
	Status       string `json:"status"`
}

func FromRoomViews(vs []*queries.RoomView) []*RoomResponse {
	res := make([]*RoomResponse, 0, len(vs))
	if err := copier.Copy(&res, &vs); err != nil {
		panic("FromRoomViews: " + err.Error())
	}
	return res
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	res := &RoomResponse{}
	if err := copier.Copy(res, v); err != nil {
		panic("FromRoomView: " + err.Error())
	}
	return res
}
