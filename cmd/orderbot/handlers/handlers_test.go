package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	"orderbot/cmd/orderbot/config"
	"orderbot/cmd/orderbot/mocks"
	"orderbot/cmd/orderbot/models"
	"orderbot/cmd/orderbot/notifier"
	"orderbot/cmd/orderbot/storage"
)

func prepare(t *testing.T) (*mocks.MockStorageService, *mocks.MockNotifier, *chi.Mux) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	conf := config.NewConfig()
	mockStorageService := mocks.NewMockStorageService(ctrl)
	mockNotifier := mocks.NewMockNotifier(ctrl)

	controller := NewController(conf, mockStorageService, zap.NewNop().Sugar(), mockNotifier)

	r := chi.NewRouter()
	r.Post("/order", controller.CreateOrder())
	r.Get("/status/{orderID}", controller.GetStatus())
	r.Get("/orders", controller.ListOrders())
	r.Post("/update-status/{orderID}", controller.UpdateStatus())

	return mockStorageService, mockNotifier, r
}

func orderBody(id string) []byte {
	body, _ := json.Marshal(models.OrderRequest{
		ID:        id,
		FirstName: "Ann",
		LastName:  "Lee",
		Passport:  "AB1234567",
		Phone:     "+79990001122",
		Discord:   "ann#0001",
		Amount:    500,
		Items:     []models.OrderItem{{Name: "Service A", Price: 500, Quantity: 1}},
	})
	return body
}

func Test_CreateOrder(t *testing.T) {
	tests := []struct {
		name           string
		body           []byte
		mockSetup      func(s *mocks.MockStorageService, n *mocks.MockNotifier)
		expectedStatus int
	}{
		{
			name: "Successful Submission",
			body: orderBody("#1234"),
			mockSetup: func(s *mocks.MockStorageService, n *mocks.MockNotifier) {
				s.EXPECT().CreateOrder("#1234", gomock.Any()).Do(func(_ string, o models.Order) {
					if o.Status != models.StatusPending {
						t.Errorf("expected pending status; got %v", o.Status)
					}
					if o.Data == nil || o.Data.FirstName != "Ann" {
						t.Errorf("expected data snapshot; got %+v", o.Data)
					}
				})
				n.EXPECT().Notify(gomock.Any())
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid Order ID - No Side Effects",
			body:           orderBody("1234"),
			mockSetup:      func(_ *mocks.MockStorageService, _ *mocks.MockNotifier) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid Order ID - Too Long",
			body:           orderBody("#12345"),
			mockSetup:      func(_ *mocks.MockStorageService, _ *mocks.MockNotifier) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed Body",
			body:           []byte("{not json"),
			mockSetup:      func(_ *mocks.MockStorageService, _ *mocks.MockNotifier) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStorageService, mockNotifier, r := prepare(t)
			tt.mockSetup(mockStorageService, mockNotifier)

			req := httptest.NewRequest("POST", "/order", bytes.NewReader(tt.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			resp := w.Result()
			defer resp.Body.Close()
			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("expected status %v; got %v", tt.expectedStatus, resp.StatusCode)
			}

			if tt.expectedStatus == http.StatusOK {
				var body map[string]string
				_ = json.NewDecoder(resp.Body).Decode(&body)
				if body["orderId"] != "#1234" {
					t.Errorf("expected orderId #1234; got %q", body["orderId"])
				}
			}
		})
	}
}

func Test_GetStatus(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		mockSetup      func(s *mocks.MockStorageService)
		expectedStatus int
		expectedBody   map[string]string
	}{
		{
			name:   "Existing Order",
			target: "/status/%231234",
			mockSetup: func(s *mocks.MockStorageService) {
				s.EXPECT().GetOrder("#1234").Return(models.Order{Status: models.StatusApproved}, true)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]string{"status": "approved"},
		},
		{
			name:   "Unknown Order - Default Pending Body",
			target: "/status/%239999",
			mockSetup: func(s *mocks.MockStorageService) {
				s.EXPECT().GetOrder("#9999").Return(models.Order{}, false)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   map[string]string{"status": "pending", "error": "order not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStorageService, _, r := prepare(t)
			tt.mockSetup(mockStorageService)

			req := httptest.NewRequest("GET", tt.target, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			resp := w.Result()
			defer resp.Body.Close()
			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("expected status %v; got %v", tt.expectedStatus, resp.StatusCode)
			}

			var body map[string]string
			_ = json.NewDecoder(resp.Body).Decode(&body)
			for key, want := range tt.expectedBody {
				if body[key] != want {
					t.Errorf("expected %s=%q; got %q", key, want, body[key])
				}
			}
		})
	}
}

func Test_ListOrders(t *testing.T) {
	mockStorageService, _, r := prepare(t)

	mockStorageService.EXPECT().ListOrders().Return(map[string]models.Order{
		"#1234": {Status: models.StatusPending},
		"#5678": {Status: models.StatusApproved},
	})

	req := httptest.NewRequest("GET", "/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status OK; got %v", resp.StatusCode)
	}

	var body map[string]models.Order
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if len(body) != 2 {
		t.Errorf("expected 2 orders; got %d", len(body))
	}
	if body["#5678"].Status != models.StatusApproved {
		t.Errorf("expected #5678 approved; got %v", body["#5678"].Status)
	}
}

func Test_UpdateStatus(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		body           string
		mockSetup      func(s *mocks.MockStorageService)
		expectedStatus int
	}{
		{
			name:   "Approve Existing Order",
			target: "/update-status/%231234",
			body:   `{"status":"approved"}`,
			mockSetup: func(s *mocks.MockStorageService) {
				s.EXPECT().SetStatus("#1234", models.StatusApproved).
					Return(models.Order{Status: models.StatusApproved}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Unknown Order",
			target: "/update-status/%239999",
			body:   `{"status":"rejected"}`,
			mockSetup: func(s *mocks.MockStorageService) {
				s.EXPECT().SetStatus("#9999", models.StatusRejected).
					Return(models.Order{}, storage.ErrOrderNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Invalid Status - No Side Effects",
			target:         "/update-status/%231234",
			body:           `{"status":"shipped"}`,
			mockSetup:      func(_ *mocks.MockStorageService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Pending Is Not A Decision",
			target:         "/update-status/%231234",
			body:           `{"status":"pending"}`,
			mockSetup:      func(_ *mocks.MockStorageService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed Order ID",
			target:         "/update-status/1234",
			body:           `{"status":"approved"}`,
			mockSetup:      func(_ *mocks.MockStorageService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStorageService, _, r := prepare(t)
			tt.mockSetup(mockStorageService)

			req := httptest.NewRequest("POST", tt.target, bytes.NewReader([]byte(tt.body)))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			resp := w.Result()
			defer resp.Body.Close()
			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("expected status %v; got %v", tt.expectedStatus, resp.StatusCode)
			}

			if tt.expectedStatus == http.StatusOK {
				var body map[string]string
				_ = json.NewDecoder(resp.Body).Decode(&body)
				if body["status"] != "approved" {
					t.Errorf("expected status approved; got %q", body["status"])
				}
			}
		})
	}
}

// Notification is enqueued fire-and-forget, so a dead chat destination
// must never fail the submission.
func Test_CreateOrder_NotifierIndependence(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorageService := mocks.NewMockStorageService(ctrl)
	mockStorageService.EXPECT().CreateOrder("#1234", gomock.Any())

	sender := mocks.NewMockTelegramSender(ctrl)
	sender.EXPECT().SendMessage(gomock.Any()).Return(errors.New("telegram unreachable"))

	pool := notifier.NewPool(sender, 1, zap.NewNop().Sugar())
	pool.Start()

	controller := NewController(config.NewConfig(), mockStorageService, zap.NewNop().Sugar(), pool)

	req := httptest.NewRequest("POST", "/order", bytes.NewReader(orderBody("#1234")))
	w := httptest.NewRecorder()
	controller.CreateOrder().ServeHTTP(w, req)

	pool.Drain()

	if w.Code != http.StatusOK {
		t.Errorf("expected status OK despite notifier failure; got %v", w.Code)
	}
}
