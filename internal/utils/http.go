package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/IvanovPete/test-backend/models"
)

// WriteJSON serializes data and writes it with statusCode and a JSON
// Content-Type. A marshaling failure is answered with 500 and returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteDetail writes the error envelope {"detail": detail}.
func WriteDetail(w http.ResponseWriter, detail string, statusCode int) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Detail: detail}, statusCode)
}
