package notification

import (
	"context"
	"fmt"

	"github.com/KenzieRafa/Reservation-API/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts waitlist reminders to the operations chat so the
// front desk can follow up with the guest. With no token or chat id configured
// it degrades to a no-op.
type TelegramNotifier struct {
	bot       *tgbotapi.BotAPI
	opsChatID int64
	logger    logger.Logger
}

func NewTelegramNotifier(token string, opsChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, opsChatID: opsChatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, opsChatID: opsChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyWaitlistReminder(ctx context.Context, entry *domain.WaitlistEntry) {
	text := fmt.Sprintf(
		"*Waitlist follow-up*\n\n"+
			"Guest: %s\n"+
			"Room type: %s\n"+
			"Dates: %s to %s\n"+
			"Priority: %s\n"+
			"Entry expires: %s",
		entry.GuestID.String(),
		entry.RoomTypeID,
		entry.RequestedDates.CheckIn.Format("2006-01-02"),
		entry.RequestedDates.CheckOut.Format("2006-01-02"),
		entry.Priority.String(),
		entry.ExpiresAt.Format("2006-01-02"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.opsChatID == 0 {
		n.logger.Debug("notification skipped (no ops chat configured)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.opsChatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.opsChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.opsChatID),
			logger.String("error", err.Error()),
		)
	}
}
