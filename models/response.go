package models

type APIResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
}

type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

type Metadata struct {
	CurrentPage int `json:"currentPage"`
	LastPage    int `json:"lastPage"`
	Limit       int `json:"limit"`
	Total       int `json:"total"`
}
