package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/idanidan29/tripbooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramAlerter sends operator alerts to a fixed ops chat. Used for
// conditions that indicate a bug, such as an inventory increment clamped at
// capacity.
type TelegramAlerter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramAlerter(token string, chatID int64, log logger.Logger) (*TelegramAlerter, error) {
	if token == "" || chatID == 0 {
		log.Warn("telegram ops alerts disabled (no token or chat id)")
		return &TelegramAlerter{logger: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramAlerter{bot: bot, chatID: chatID, logger: log}, nil
}

func (a *TelegramAlerter) AlertInventoryClamp(ctx context.Context, pool domain.Pool, excess int) {
	text := fmt.Sprintf(
		"*Inventory clamp detected*\n\nTrip: %s\nDate selector: %d\nExcess rooms dropped: %d\n\nAn increment exceeded the pool's capacity; some release was double counted.",
		pool.TripID, pool.DateSelector, excess,
	)
	a.send(ctx, text)
}

func (a *TelegramAlerter) send(ctx context.Context, text string) {
	if a.bot == nil {
		a.logger.Debug("ops alert skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		a.logger.Debug("ops alert skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(a.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := a.bot.Send(msg); err != nil {
		a.logger.Error("failed to send ops alert",
			logger.Int64("chat_id", a.chatID),
			logger.String("error", err.Error()),
		)
	}
}
