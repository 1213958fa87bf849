package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Addr        string
	BotToken    string
	ChatID      int64
	AdminIDs    []int64
	StoragePath string

	Timeout       int
	NotifyWorkers int
	MaxBodyBytes  int64
}

func NewConfig() *Config {
	return &Config{
		Addr:          ":3000",
		StoragePath:   "orders.json",
		Timeout:       15,
		NotifyWorkers: 2,
		MaxBodyBytes:  10 << 20, // 10MB, order photos arrive inline as data URIs
	}
}

func Init(c *Config) error {
	token := ""
	chat := ""
	admins := ""

	if val, exist := os.LookupEnv("PORT"); exist {
		c.Addr = ":" + val
	}
	if val, exist := os.LookupEnv("RUN_ADDRESS"); exist {
		c.Addr = val
	}
	if val, exist := os.LookupEnv("TELEGRAM_BOT_TOKEN"); exist {
		token = val
	}
	if val, exist := os.LookupEnv("TELEGRAM_CHAT_ID"); exist {
		chat = val
	}
	if val, exist := os.LookupEnv("ADMIN_IDS"); exist {
		admins = val
	}
	if val, exist := os.LookupEnv("ORDERS_FILE"); exist {
		c.StoragePath = val
	}

	flag.StringVar(&c.Addr, "a", c.Addr, "HTTP-server startup address and port")
	flag.StringVar(&token, "t", token, "telegram bot token")
	flag.StringVar(&chat, "c", chat, "telegram chat id receiving order notifications")
	flag.StringVar(&admins, "admins", admins, "comma-separated telegram user ids allowed to approve/reject orders")
	flag.StringVar(&c.StoragePath, "f", c.StoragePath, "path to the order status file")

	flag.Parse()

	c.BotToken = token

	if chat != "" {
		id, err := strconv.ParseInt(chat, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TELEGRAM_CHAT_ID %q: %w", chat, err)
		}
		c.ChatID = id
	}

	ids, err := ParseAdminIDs(admins)
	if err != nil {
		return err
	}
	c.AdminIDs = ids

	return nil
}

// ParseAdminIDs splits a comma-separated list of numeric telegram user IDs.
func ParseAdminIDs(s string) ([]int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid admin id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
