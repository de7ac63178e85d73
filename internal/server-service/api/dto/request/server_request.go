package request

type ServerRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	URL         string `json:"url" binding:"required,url"`
	Type        string `json:"type"`
	Healthcheck string `json:"healthcheck" binding:"max=500"`
}
