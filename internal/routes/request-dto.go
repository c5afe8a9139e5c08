package routes

type CreateRouteRequest struct {
	CompanyID             string  `json:"company_id" binding:"required,uuid"`
	OriginLocationID      string  `json:"origin_location_id" binding:"required,uuid"`
	DestinationLocationID string  `json:"destination_location_id" binding:"required,uuid"`
	Name                  string  `json:"name" binding:"required,min=2,max=255"`
	DistanceKM            float64 `json:"distance_km" binding:"omitempty,gt=0"`
	EstimatedDurationMin  int     `json:"estimated_duration_min" binding:"omitempty,gt=0"`
	BasePrice             float64 `json:"base_price" binding:"required,gt=0"`
}

type UpdateRouteRequest struct {
	Name                 *string  `json:"name" binding:"omitempty,min=2,max=255"`
	DistanceKM           *float64 `json:"distance_km" binding:"omitempty,gt=0"`
	EstimatedDurationMin *int     `json:"estimated_duration_min" binding:"omitempty,gt=0"`
	BasePrice            *float64 `json:"base_price" binding:"omitempty,gt=0"`
	IsActive             *bool    `json:"is_active"`
}

type CreateRouteScheduleRequest struct {
	DepartureTime string   `json:"departure_time" binding:"required,len=5"` // HH:MM
	DaysOfWeek    []string `json:"days_of_week" binding:"required,min=1,max=7,dive,oneof=MON TUE WED THU FRI SAT SUN"`
	PriceOverride *float64 `json:"price_override" binding:"omitempty,gt=0"`
}

type UpdateRouteScheduleRequest struct {
	DepartureTime *string  `json:"departure_time" binding:"omitempty,len=5"`
	DaysOfWeek    []string `json:"days_of_week" binding:"omitempty,min=1,max=7,dive,oneof=MON TUE WED THU FRI SAT SUN"`
	PriceOverride *float64 `json:"price_override" binding:"omitempty,gt=0"`
	IsActive      *bool    `json:"is_active"`
}
