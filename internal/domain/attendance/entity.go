package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"
	StatusOnLeave Status = "on-leave"
	StatusHoliday Status = "holiday"
)

// Location is an optional punch geolocation. Absent coordinates stay nil,
// never guessed.
type Location struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address"`
}

// AutoPunchOutAddress is the sentinel written by the daily sweep.
const AutoPunchOutAddress = "Auto punch-out"

// Attendance is one record per employee per calendar day. Date is the
// local calendar day; punch timestamps are instants.
type Attendance struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	Date             time.Time  `json:"date"`
	PunchIn          *time.Time `json:"punch_in"`
	PunchOut         *time.Time `json:"punch_out"`
	PunchInLocation  Location   `json:"punch_in_location"`
	PunchOutLocation Location   `json:"punch_out_location"`
	WorkingHours     float64    `json:"working_hours"`
	Status           Status     `json:"status"`
	IsLate           bool       `json:"is_late"`
	LateByMinutes    int        `json:"late_by_minutes"`
	OvertimeHours    float64    `json:"overtime_hours"`
	Notes            string     `json:"notes,omitempty"`
	IsAutoPunchOut   bool       `json:"is_auto_punch_out"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Joined for admin reports
	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
}
