package handlers

import (
	"encoding/json"
	"io"
	"net/http"
)

type (
	responseData struct {
		status int
		size   int
	}

	loggingResponseWriter struct {
		http.ResponseWriter
		responseData *responseData
	}
)

func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

type gzipWriter struct {
	http.ResponseWriter
	Writer io.Writer
}

func (w gzipWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func writeJSON(res http.ResponseWriter, code int, v any) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(code)
	_ = json.NewEncoder(res).Encode(v)
}

func writeJSONError(res http.ResponseWriter, message string, code int) {
	writeJSON(res, code, map[string]string{"error": message})
}
