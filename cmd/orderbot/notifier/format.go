package notifier

import (
	"encoding/base64"
	"fmt"
	"strings"

	"orderbot/cmd/orderbot/models"
)

// FormatOrderMessage renders the group-chat notification for a newly
// submitted order. Line items keep their submission order.
func FormatOrderMessage(id string, data *models.OrderData) string {
	lines := make([]string, 0, len(data.Items))
	for _, item := range data.Items {
		lines = append(lines, fmt.Sprintf("%s - %v ₽ x %d", item.Name, item.Price, item.Quantity))
	}

	additional := data.Additional
	if additional == "" {
		additional = "Нет"
	}

	return fmt.Sprintf(`📋 Новый заказ %s
👤 Имя: %s %s
🛂 Паспорт: %s
📞 Телефон: %s
🌐 Discord: %s
ℹ️ Дополнительно: %s
💰 Сумма: %v ₽
🛒 Услуги:
%s`,
		id, data.FirstName, data.LastName, data.Passport, data.Phone,
		data.Discord, additional, data.Amount, strings.Join(lines, "\n"))
}

// PhotoCaption is the caption attached to a payment-proof upload.
func PhotoCaption(id string) string {
	return fmt.Sprintf("Фото оплаты для заказа %s", id)
}

// DecodePhoto extracts the binary payload from a data-URI string:
// everything after the first comma, base64-encoded.
func DecodePhoto(dataURI string) ([]byte, error) {
	_, payload, found := strings.Cut(dataURI, ",")
	if !found {
		return nil, fmt.Errorf("photo is not a data URI")
	}
	return base64.StdEncoding.DecodeString(payload)
}
