package request

// IntervalRequest carries the sweep interval in milliseconds, at most one day.
type IntervalRequest struct {
	Interval *int64 `json:"interval" binding:"required,gte=1000,lte=86400000"`
}
