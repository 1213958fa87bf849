package notifier

import (
	"sync"

	"go.uber.org/zap"

	"orderbot/cmd/orderbot/models"
)

// Task carries everything a worker needs to announce one order.
type Task struct {
	OrderID string
	Data    *models.OrderData
	Photo   string // data-URI string, may be empty
}

// Notifier accepts fire-and-forget notification tasks. Delivery is
// decoupled from order processing: a broken chat destination never
// affects the caller-visible result.
type Notifier interface {
	Notify(task Task)
}

type Pool struct {
	tasks       chan Task
	sender      TelegramSender
	workerCount int
	wg          *sync.WaitGroup
	sugar       *zap.SugaredLogger
}

const bufSize = 100

func NewPool(sender TelegramSender, workerCount int, sugar *zap.SugaredLogger) *Pool {
	return &Pool{
		tasks:       make(chan Task, bufSize),
		sender:      sender,
		workerCount: workerCount,
		wg:          &sync.WaitGroup{},
		sugar:       sugar,
	}
}

func (p *Pool) Start() {
	for i := 0; i < p.workerCount; i++ {
		go p.worker()
	}
}

func (p *Pool) worker() {
	for task := range p.tasks {
		p.deliver(task)
		p.wg.Done()
	}
}

// deliver is best effort: every failure is logged and swallowed.
func (p *Pool) deliver(task Task) {
	message := FormatOrderMessage(task.OrderID, task.Data)
	if err := p.sender.SendMessage(message); err != nil {
		p.sugar.Errorf("notify %s: sending message: %v", task.OrderID, err)
	}

	if task.Photo == "" {
		return
	}

	photo, err := DecodePhoto(task.Photo)
	if err != nil {
		p.sugar.Errorf("notify %s: decoding photo: %v", task.OrderID, err)
		return
	}
	if err := p.sender.SendPhoto(photo, PhotoCaption(task.OrderID)); err != nil {
		p.sugar.Errorf("notify %s: sending photo: %v", task.OrderID, err)
	}
}

func (p *Pool) Notify(task Task) {
	p.wg.Add(1)
	p.tasks <- task
}

// Drain waits for queued notifications to be delivered and stops the
// workers.
func (p *Pool) Drain() {
	p.wg.Wait()
	close(p.tasks)
}
