package attendance

type CheckInRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	AttendanceDate string  `json:"attendance_date"`
	ClockIn        string  `json:"clock_in"`
	ClockOut       *string `json:"clock_out,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}
