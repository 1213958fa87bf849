package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"
	"go.uber.org/zap"

	"orderbot/cmd/orderbot/models"
	"orderbot/cmd/orderbot/storage"
)

// Authorizer decides whether a chat user may run admin commands.
type Authorizer interface {
	IsAdmin(userID int64) bool
}

type AllowList map[int64]struct{}

func NewAllowList(ids []int64) AllowList {
	list := make(AllowList, len(ids))
	for _, id := range ids {
		list[id] = struct{}{}
	}
	return list
}

func (l AllowList) IsAdmin(userID int64) bool {
	_, ok := l[userID]
	return ok
}

// Bot listens for /approve and /reject commands in the chat and mutates
// the order registry on behalf of allow-listed administrators.
type Bot struct {
	api            *tgbotapi.BotAPI
	storageService storage.StorageService
	auth           Authorizer
	sugar          *zap.SugaredLogger
}

func NewBot(token string, storageService storage.StorageService, auth Authorizer, sugar *zap.SugaredLogger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connecting to telegram: %w", err)
	}

	return &Bot{
		api:            api,
		storageService: storageService,
		auth:           auth,
		sugar:          sugar,
	}, nil
}

// Run polls for updates until Stop is called.
func (b *Bot) Run() {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30

	b.sugar.Infof("telegram bot started as @%s", b.api.Self.UserName)

	for update := range b.api.GetUpdatesChan(updateConfig) {
		msg := update.Message
		if msg == nil || !msg.IsCommand() {
			continue
		}

		var reply string
		switch msg.Command() {
		case "approve":
			reply = b.HandleStatusCommand(msg.From.ID, msg.CommandArguments(), models.StatusApproved)
		case "reject":
			reply = b.HandleStatusCommand(msg.From.ID, msg.CommandArguments(), models.StatusRejected)
		default:
			continue
		}

		if _, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
			b.sugar.Errorf("sending reply: %v", err)
		}
	}
}

func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}

// HandleStatusCommand evaluates one /approve or /reject invocation and
// returns the reply text for the chat.
func (b *Bot) HandleStatusCommand(userID int64, args string, status models.Status) string {
	verb := "approve"
	if status == models.StatusRejected {
		verb = "reject"
	}

	if !b.auth.IsAdmin(userID) {
		b.sugar.Infof("unauthorized /%s attempt by %d", verb, userID)
		return "У вас нет прав для выполнения этой команды."
	}

	fields := strings.Fields(args)
	if len(fields) == 0 {
		return fmt.Sprintf("Укажите действительный ID заказа, например: /%s #1234", verb)
	}

	orderID := models.NormalizeOrderID(fields[0])
	if !models.IsValidOrderID(orderID) {
		b.sugar.Infof("/%s with malformed order id %q from %d", verb, fields[0], userID)
		return fmt.Sprintf("Укажите действительный ID заказа, например: /%s #1234", verb)
	}

	if _, err := b.storageService.SetStatus(orderID, status); err != nil {
		known := b.storageService.KnownIDs()
		list := "нет"
		if len(known) > 0 {
			list = strings.Join(known, ", ")
		}
		return fmt.Sprintf("Заказ %s не найден. Известные заказы: %s", orderID, list)
	}

	b.sugar.Infof("order %s set to %s by %d", orderID, status, userID)

	if status == models.StatusApproved {
		return fmt.Sprintf("Заказ %s подтвержден", orderID)
	}
	return fmt.Sprintf("Заказ %s отклонен", orderID)
}
