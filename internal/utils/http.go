package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// jsonIndent is the indentation used for every JSON response body.
const jsonIndent = "  "

// MarshalIndentedJSON serializes data as JSON indented with two spaces and
// terminated by a newline.
func MarshalIndentedJSON(data any) ([]byte, error) {
	jsonData, err := json.MarshalIndent(data, "", jsonIndent)
	if err != nil {
		return nil, err
	}

	return append(jsonData, '\n'), nil
}

// WriteJSON sends data as an indented application/json body with the given
// status. Nothing but a 500 is written if data cannot be marshaled.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := MarshalIndentedJSON(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
