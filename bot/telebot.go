package bot

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TeleBot struct {
	bot    *tgbotapi.BotAPI
	chatId int64
}

type TeleBotConfig struct {
	Token  string
	ChatId int64
}

func NewTeleBot(conf *TeleBotConfig) (*TeleBot, error) {

	bot, err := tgbotapi.NewBotAPI(conf.Token)
	if err != nil {
		return nil, err
	}

	return &TeleBot{
		bot:    bot,
		chatId: conf.ChatId,
	}, nil
}

// SendMessage delivers a run summary. A delivery failure is logged and
// swallowed; notification must never fail the pipeline.
func (t TeleBot) SendMessage(msg string) {

	teleMsg := tgbotapi.NewMessage(t.chatId, msg)
	_, err := t.bot.Send(teleMsg)
	if err != nil {
		log.Printf("telegram send failed: %v", err)
	}
}
