package request

// AvailabilityQuery binds ?date=YYYY-MM-DD.
type AvailabilityQuery struct {
	Date string `form:"date"`
}

type StatisticsQuery struct {
	Date  string `form:"date"`
	Limit int    `form:"limit" binding:"omitempty,min=0,max=100"`
}
