package routes

import (
	"time"

	"buslink/internal/locations"

	"github.com/google/uuid"
)

// Route connects an origin and destination location for one company.
// Pricing on the route is the base fare; seat tiers add multipliers on top.
type Route struct {
	ID                    uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	CompanyID             uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	OriginLocationID      uuid.UUID `json:"origin_location_id" gorm:"type:uuid;not null;index"`
	DestinationLocationID uuid.UUID `json:"destination_location_id" gorm:"type:uuid;not null;index"`
	Name                  string    `json:"name" gorm:"not null;size:255"`
	DistanceKM            float64   `json:"distance_km"`
	EstimatedDurationMin  int       `json:"estimated_duration_min"`
	BasePrice             float64   `json:"base_price" gorm:"not null"`
	IsActive              bool      `json:"is_active" gorm:"default:true"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`

	Origin      *locations.Location `json:"origin,omitempty" gorm:"foreignKey:OriginLocationID"`
	Destination *locations.Location `json:"destination,omitempty" gorm:"foreignKey:DestinationLocationID"`
}

func (Route) TableName() string {
	return "routes"
}

// RouteSchedule is a recurring timetable entry on a route: a departure
// time repeated on the given weekdays. Trips are generated from these.
type RouteSchedule struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	RouteID       uuid.UUID `json:"route_id" gorm:"type:uuid;not null;index"`
	DepartureTime string    `json:"departure_time" gorm:"not null;size:5"` // HH:MM, 24h
	DaysOfWeek    string    `json:"days_of_week" gorm:"not null;size:27"`  // comma-separated MON..SUN
	PriceOverride *float64  `json:"price_override"`                        // defaults to the route base price
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (RouteSchedule) TableName() string {
	return "route_schedules"
}

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "MON",
	time.Tuesday:   "TUE",
	time.Wednesday: "WED",
	time.Thursday:  "THU",
	time.Friday:    "FRI",
	time.Saturday:  "SAT",
	time.Sunday:    "SUN",
}

// RunsOn reports whether the timetable entry applies to the given weekday.
func (rs *RouteSchedule) RunsOn(day time.Weekday) bool {
	name := weekdayNames[day]
	fields := splitDays(rs.DaysOfWeek)
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}

func splitDays(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}
