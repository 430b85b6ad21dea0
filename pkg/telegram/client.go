// Package telegram is a thin client used as an out-of-band admin alert
// channel for broadcast notifications.
package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Client struct {
	Bot *tgbotapi.BotAPI
}

func NewClient(token string) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Client{Bot: bot}, nil
}

// SendMessage delivers a plain-text message to a chat.
func (c *Client) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := c.Bot.Send(msg)
	return err
}

// AdminAlerter adapts the client to the dispatcher's alert hook, pinned to
// one chat.
type AdminAlerter struct {
	client *Client
	chatID int64
}

func NewAdminAlerter(client *Client, chatID int64) *AdminAlerter {
	return &AdminAlerter{client: client, chatID: chatID}
}

func (a *AdminAlerter) Alert(text string) error {
	return a.client.SendMessage(a.chatID, text)
}
