package handlers

import (
	"compress/gzip"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

func (con *Controller) PanicRecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				con.sugar.Errorf("panic handling %s %s: %v", req.Method, req.RequestURI, err)
				writeJSONError(res, "internal server error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(res, req)
	})
}

// RequestIDMiddleware tags every request with an ID so handler and
// notifier log lines can be correlated.
func (con *Controller) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		rid := req.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
			req.Header.Set("X-Request-ID", rid)
		}
		res.Header().Set("X-Request-ID", rid)

		next.ServeHTTP(res, req)
	})
}

func (con *Controller) LoggingMiddleware(next http.Handler) http.Handler {
	logFn := func(res http.ResponseWriter, req *http.Request) {
		start := time.Now()

		responseData := &responseData{}
		lw := loggingResponseWriter{
			ResponseWriter: res,
			responseData:   responseData,
		}
		next.ServeHTTP(&lw, req)

		con.sugar.Infoln(
			"uri", req.RequestURI,
			"method", req.Method,
			"status", responseData.status,
			"size", responseData.size,
			"duration", time.Since(start),
			"request_id", req.Header.Get("X-Request-ID"),
		)
	}

	return http.HandlerFunc(logFn)
}

// BodyLimitMiddleware caps request bodies; submissions carry inline
// base64 photos and may legitimately run into megabytes.
func (con *Controller) BodyLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		req.Body = http.MaxBytesReader(res, req.Body, con.conf.MaxBodyBytes)
		next.ServeHTTP(res, req)
	})
}

func (con *Controller) GzipDecodeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		if req.Header.Get("Content-Encoding") == "gzip" {
			gz, err := gzip.NewReader(req.Body)
			if err != nil {
				writeJSONError(res, "unable to decode gzip body", http.StatusBadRequest)
				return
			}
			defer gz.Close()
			req.Body = gz
		}
		next.ServeHTTP(res, req)
	})
}

func (con *Controller) GzipEncodeMiddleware(next http.Handler) http.Handler {
	compressFn := func(res http.ResponseWriter, req *http.Request) {
		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(res, req)
			return
		}

		minSize := 1400
		contentLength, _ := strconv.Atoi(req.Header.Get("Content-Length"))
		if contentLength > 0 && contentLength < minSize {
			next.ServeHTTP(res, req)
			return
		}

		gz, err := gzip.NewWriterLevel(res, gzip.BestSpeed)
		if err != nil {
			writeJSONError(res, "error creating gzip writer", http.StatusInternalServerError)
			return
		}
		defer gz.Close()

		res.Header().Set("Content-Encoding", "gzip")
		next.ServeHTTP(gzipWriter{ResponseWriter: res, Writer: gz}, req)
	}

	return http.HandlerFunc(compressFn)
}
