package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the wire envelope shared by every endpoint. Field names are part
// of the API contract consumed by the web client; do not rename them.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// ResponseJSON writes a JSON response with a custom status code
func ResponseJSON(w http.ResponseWriter, code int, success bool, message string, errors any) {
	response := Response{
		Success: success,
		Message: message,
		Errors:  errors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusOK, true, message, nil)
}

// returns 200 OK with an exchange token
func ResponseSuccessToken(w http.ResponseWriter, message, token string) {
	response := Response{
		Success: true,
		Message: message,
		Token:   token,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	ResponseJSON(w, http.StatusBadRequest, false, message, errors)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusUnauthorized, false, message, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, false, message, nil)
}
