package request

// ReportRequest covers the last 24 hours when the dates are omitted.
type ReportRequest struct {
	StartDate string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Email     string `json:"email" binding:"required,email"`
}
