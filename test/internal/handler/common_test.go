package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	h "go-doormint-ledger/internal/handler"
)

var (
	InvalidJSON = `{"invalid": json}`
)

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body and caller identity header
func createJSONHTTPRequest(method, url, caller string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	if caller != "" {
		req.Header.Set(h.CallerHeader, caller)
	}
	return req
}

// create HTTP request without body
func createHTTPRequest(method, url, caller string) *http.Request {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil
	}
	if caller != "" {
		req.Header.Set(h.CallerHeader, caller)
	}
	return req
}
