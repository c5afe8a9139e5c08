package schedules

import "time"

type CreateScheduleRequest struct {
	RouteScheduleID   string   `json:"route_schedule_id" binding:"required,uuid"`
	DepartureDate     string   `json:"departure_date" binding:"required"` // YYYY-MM-DD
	BusID             string   `json:"bus_id" binding:"required,uuid"`
	PrimaryDriverID   string   `json:"primary_driver_id" binding:"required,uuid"`
	SecondaryDriverID *string  `json:"secondary_driver_id" binding:"omitempty,uuid"`
	Price             *float64 `json:"price" binding:"omitempty,gt=0"`
}

type TransitionRequest struct {
	Status              string     `json:"status" binding:"required,oneof=IN_PROGRESS DELAYED COMPLETED CANCELLED"`
	ActualDepartureTime *time.Time `json:"actual_departure_time"`
	ActualArrivalTime   *time.Time `json:"actual_arrival_time"`
	Notes               string     `json:"notes" binding:"max=500"`
}

type ListSchedulesQuery struct {
	RouteID  string `form:"route_id" binding:"omitempty,uuid"`
	Status   string `form:"status" binding:"omitempty,oneof=SCHEDULED IN_PROGRESS DELAYED COMPLETED CANCELLED"`
	DateFrom string `form:"date_from"` // YYYY-MM-DD
	DateTo   string `form:"date_to"`   // YYYY-MM-DD
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit    int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}
