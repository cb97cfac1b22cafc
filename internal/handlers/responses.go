package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

const maxRequestBody = 1 << 20 // 1 MiB

// respondJSON writes v as a JSON response with the given status
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// decodeJSON decodes the request body into dst, rejecting unknown fields
// and oversized bodies
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
