package core

// Error codes
const (
	ErrGameNotFound   = "GAME_NOT_FOUND"
	ErrCardNotFound   = "CARD_NOT_FOUND"
	ErrCardsNotFound  = "CARDS_NOT_FOUND"
	ErrDeckNotFound   = "DECK_NOT_FOUND"
	ErrInvalidCards   = "INVALID_CARDS"
	ErrInvalidRequest = "INVALID_REQUEST"
	ErrInvalidImport  = "INVALID_IMPORT"
	ErrImportError    = "IMPORT_ERROR"
	ErrUnknown        = "UNKNOWN_ERROR"
)

// Error is the failure half of the response envelope.
type Error struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Pagination describes the page window applied to a list response.
// Filtering and search run before pagination, so TotalItems counts the
// filtered set, not the table.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// Response is the uniform envelope returned by every API and service
// call. Domain failures are values carried in Error; the envelope is
// never accompanied by a Go error across this boundary.
type Response struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Error      *Error      `json:"error,omitempty"`
}

// OK builds a success envelope.
func OK(data any) *Response {
	return &Response{Success: true, Data: data}
}

// OKPaged builds a success envelope with pagination info.
func OKPaged(data any, p Pagination) *Response {
	return &Response{Success: true, Data: data, Pagination: &p}
}

// Fail builds a failure envelope.
func Fail(code, message string) *Response {
	return &Response{Success: false, Error: &Error{Code: code, Message: message}}
}

// FailDetails builds a failure envelope with structured details.
func FailDetails(code, message string, details map[string]any) *Response {
	return &Response{Success: false, Error: &Error{Code: code, Message: message, Details: details}}
}
