package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"

	"orderbot/cmd/orderbot/config"
	"orderbot/cmd/orderbot/models"
)

type StorageService interface {
	CreateOrder(id string, order models.Order)
	GetOrder(id string) (models.Order, bool)
	ListOrders() map[string]models.Order
	SetStatus(id string, status models.Status) (models.Order, error)
	KnownIDs() []string
}

var ErrOrderNotFound = errors.New("error order not found")

// FileStorage keeps the order registry in memory and mirrors every
// mutation to a single JSON file. The file is replaced atomically
// (write to temp, rename) so a crash mid-save never leaves a torn file.
type FileStorage struct {
	mu     sync.RWMutex
	orders map[string]models.Order
	path   string
	sugar  *zap.SugaredLogger
}

func NewStorage(c *config.Config, sugar *zap.SugaredLogger) *FileStorage {
	s := &FileStorage{
		orders: make(map[string]models.Order),
		path:   c.StoragePath,
		sugar:  sugar,
	}
	s.load()
	return s
}

// load reads the backing file at startup. A missing file means a fresh
// registry; an unreadable or corrupt one is logged and skipped.
func (s *FileStorage) load() {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return
	}
	if err != nil {
		s.sugar.Errorf("reading %s: %v", s.path, err)
		return
	}

	if err := json.Unmarshal(data, &s.orders); err != nil {
		s.sugar.Errorf("parsing %s: %v", s.path, err)
		s.orders = make(map[string]models.Order)
	}
}

// persist serializes the whole registry and atomically replaces the
// backing file. Callers hold s.mu for writing.
func (s *FileStorage) persist() {
	data, err := json.MarshalIndent(s.orders, "", "  ")
	if err != nil {
		s.sugar.Errorf("serializing orders: %v", err)
		return
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "orders-*.json")
	if err != nil {
		s.sugar.Errorf("creating temp file for %s: %v", s.path, err)
		return
	}

	if _, err = tmp.Write(data); err == nil {
		err = tmp.Close()
	} else {
		tmp.Close()
	}
	if err == nil {
		err = os.Rename(tmp.Name(), s.path)
	}
	if err != nil {
		os.Remove(tmp.Name())
		s.sugar.Errorf("saving %s: %v", s.path, err)
	}
}

// CreateOrder inserts or overwrites the record unconditionally.
func (s *FileStorage) CreateOrder(id string, order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[id] = order
	s.persist()
}

func (s *FileStorage) GetOrder(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	return order, ok
}

func (s *FileStorage) ListOrders() map[string]models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make(map[string]models.Order, len(s.orders))
	for id, order := range s.orders {
		orders[id] = order
	}
	return orders
}

// SetStatus merges the new status into an existing record, preserving
// the submitted data snapshot.
func (s *FileStorage) SetStatus(id string, status models.Status) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}

	order.Status = status
	s.orders[id] = order
	s.persist()

	return order, nil
}

func (s *FileStorage) KnownIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.orders))
	for id := range s.orders {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
