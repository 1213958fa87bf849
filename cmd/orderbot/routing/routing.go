package routing

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"orderbot/cmd/orderbot/config"
	"orderbot/cmd/orderbot/handlers"
)

func InitMiddleware(r *chi.Mux, conf *config.Config, ctrl *handlers.Controller) {
	r.Use(ctrl.PanicRecoveryMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Duration(conf.Timeout) * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(ctrl.RequestIDMiddleware)
	r.Use(ctrl.LoggingMiddleware)
	r.Use(ctrl.BodyLimitMiddleware)
	r.Use(ctrl.GzipEncodeMiddleware)
	r.Use(ctrl.GzipDecodeMiddleware)
}

func Routing(r *chi.Mux, ctrl *handlers.Controller) {
	r.Post("/order", ctrl.CreateOrder())
	r.Get("/status/{orderID}", ctrl.GetStatus())
	r.Get("/orders", ctrl.ListOrders())
	r.Post("/update-status/{orderID}", ctrl.UpdateStatus())
}
