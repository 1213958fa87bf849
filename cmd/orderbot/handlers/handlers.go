package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"orderbot/cmd/orderbot/config"
	"orderbot/cmd/orderbot/models"
	"orderbot/cmd/orderbot/notifier"
	"orderbot/cmd/orderbot/storage"
)

type Controller struct {
	conf           *config.Config
	storageService storage.StorageService
	sugar          *zap.SugaredLogger
	notifier       notifier.Notifier
}

func NewController(conf *config.Config, storageService storage.StorageService, logger *zap.SugaredLogger, n notifier.Notifier) *Controller {
	return &Controller{
		conf:           conf,
		storageService: storageService,
		sugar:          logger,
		notifier:       n,
	}
}

func (con *Controller) CreateOrder() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		var order models.OrderRequest
		if err := json.NewDecoder(req.Body).Decode(&order); err != nil {
			con.sugar.Debugf("(CreateOrder) bad request body: %v", err)
			writeJSONError(res, "invalid request body", http.StatusBadRequest)
			return
		}

		if !models.IsValidOrderID(order.ID) {
			con.sugar.Debugf("(CreateOrder) invalid order id: %q", order.ID)
			writeJSONError(res, "invalid order id", http.StatusBadRequest)
			return
		}

		con.sugar.Infof("received order %s from %s %s", order.ID, order.FirstName, order.LastName)

		data := order.Snapshot()
		con.storageService.CreateOrder(order.ID, models.Order{
			Status: models.StatusPending,
			Data:   data,
		})

		// Notification goes out after the registry write commits.
		con.notifier.Notify(notifier.Task{
			OrderID: order.ID,
			Data:    data,
			Photo:   order.Photo,
		})

		writeJSON(res, http.StatusOK, map[string]string{"orderId": order.ID})
	}
}

func (con *Controller) GetStatus() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		orderID := orderIDParam(req)

		order, ok := con.storageService.GetOrder(orderID)
		if !ok {
			con.sugar.Debugf("(GetStatus) unknown order: %q", orderID)
			writeJSON(res, http.StatusNotFound, map[string]string{
				"status": string(models.StatusPending),
				"error":  "order not found",
			})
			return
		}

		writeJSON(res, http.StatusOK, order)
	}
}

func (con *Controller) ListOrders() http.HandlerFunc {
	return func(res http.ResponseWriter, _ *http.Request) {
		writeJSON(res, http.StatusOK, con.storageService.ListOrders())
	}
}

func (con *Controller) UpdateStatus() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		orderID := orderIDParam(req)

		var body struct {
			Status models.Status `json:"status"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			con.sugar.Debugf("(UpdateStatus) bad request body: %v", err)
			writeJSONError(res, "invalid request body", http.StatusBadRequest)
			return
		}

		if !body.Status.IsDecision() {
			con.sugar.Debugf("(UpdateStatus) invalid status: %q", body.Status)
			writeJSONError(res, "invalid status", http.StatusBadRequest)
			return
		}

		if !models.IsValidOrderID(orderID) {
			con.sugar.Debugf("(UpdateStatus) invalid order id: %q", orderID)
			writeJSONError(res, "invalid order id", http.StatusBadRequest)
			return
		}

		order, err := con.storageService.SetStatus(orderID, body.Status)
		if errors.Is(err, storage.ErrOrderNotFound) {
			writeJSONError(res, "order not found", http.StatusNotFound)
			return
		}

		con.sugar.Infof("order %s is now %s", orderID, order.Status)
		writeJSON(res, http.StatusOK, map[string]string{"status": string(order.Status)})
	}
}

// orderIDParam returns the orderID route parameter. Order IDs start
// with '#', so callers send them percent-encoded and chi hands back the
// raw escaped form.
func orderIDParam(req *http.Request) string {
	orderID := chi.URLParam(req, "orderID")
	if unescaped, err := url.PathUnescape(orderID); err == nil {
		orderID = unescaped
	}
	return orderID
}
