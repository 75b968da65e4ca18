package utils

import (
	"encoding/json"
	"net/http"
)

// ResponseJSON writes a JSON body with the given status code
func ResponseJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// ResponseText writes a plain-text body with the given status code
func ResponseText(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	w.Write([]byte(message))
}

// ------------- Success responses -------------

// returns 200 OK with JSON body
func ResponseOK(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 201 Created with Location header and JSON body
func ResponseCreated(w http.ResponseWriter, location string, data any) {
	w.Header().Set("Location", location)
	ResponseJSON(w, http.StatusCreated, data)
}

// ------------- Error responses -------------

// returns 400 Bad Request with a field -> message map
func ResponseValidationErrors(w http.ResponseWriter, errors map[string]string) {
	ResponseJSON(w, http.StatusBadRequest, errors)
}

// returns 400 Bad Request with plain-text detail
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseText(w, http.StatusBadRequest, message)
}

// returns 404 Not Found with plain-text detail
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseText(w, http.StatusNotFound, message)
}

// returns 500 Internal Server Error without internal detail
func ResponseInternalError(w http.ResponseWriter) {
	ResponseText(w, http.StatusInternalServerError, "Error interno del servidor")
}
