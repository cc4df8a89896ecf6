package handlers

type CreateRoomRequest struct {
	Name *string `json:"name"`
}

type CreateRoomResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

// AddTemperatureRequest carries one reading. Date is optional and uses the
// "MM-DD-YYYY HH:MM:SS" layout; RFC 3339 is accepted too.
type AddTemperatureRequest struct {
	Temperature *float64 `json:"temperature"`
	Room        *uint    `json:"room"`
	Date        string   `json:"date,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type RoomStatResponse struct {
	Name    string  `json:"name"`
	Average float64 `json:"average"`
	Days    int     `json:"days"`
}

type DailyTemperature struct {
	Date    string  `json:"date"`
	Average float64 `json:"average"`
}

type TermSeriesResponse struct {
	Name         string             `json:"name"`
	Term         string             `json:"term"`
	Temperatures []DailyTemperature `json:"temperatures"`
	Average      float64            `json:"average"`
}

type DailyAveragesResponse struct {
	Name         string             `json:"name"`
	Temperatures []DailyTemperature `json:"temperatures"`
}

type GlobalStatResponse struct {
	Average float64 `json:"average"`
	Days    int     `json:"days"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
