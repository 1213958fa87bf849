package notifier

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const DefaultAPIBase = "https://api.telegram.org"

// TelegramSender delivers texts and photos to the configured chat.
type TelegramSender interface {
	SendMessage(text string) error
	SendPhoto(photo []byte, caption string) error
}

type TelegramClient struct {
	apiBase string
	token   string
	chatID  string
	client  *resty.Client
	sugar   *zap.SugaredLogger
}

func NewTelegramClient(apiBase, token string, chatID int64, sugar *zap.SugaredLogger) *TelegramClient {
	return &TelegramClient{
		apiBase: apiBase,
		token:   token,
		chatID:  strconv.FormatInt(chatID, 10),
		client:  resty.New(),
		sugar:   sugar,
	}
}

func (t *TelegramClient) SendMessage(text string) error {
	resp, err := t.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"chat_id": t.chatID,
			"text":    text,
		}).
		Post(fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.token))

	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("sendMessage: %s: %s", resp.Status(), resp.Body())
	}

	t.sugar.Debugf("sendMessage response status: %s", resp.Status())
	return nil
}

func (t *TelegramClient) SendPhoto(photo []byte, caption string) error {
	resp, err := t.client.R().
		SetFileReader("photo", "payment.jpg", bytes.NewReader(photo)).
		SetFormData(map[string]string{
			"chat_id": t.chatID,
			"caption": caption,
		}).
		Post(fmt.Sprintf("%s/bot%s/sendPhoto", t.apiBase, t.token))

	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("sendPhoto: %s: %s", resp.Status(), resp.Body())
	}

	t.sugar.Debugf("sendPhoto response status: %s", resp.Status())
	return nil
}
