package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006 15:04"

type botSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier messages the listing owner. Listings without an owner
// chat id are skipped.
type TelegramNotifier struct {
	bot    botSender
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, listing *domain.Listing, r *domain.Reservation) {
	n.send(ctx, listing.OwnerChatID, createdText(listing, r))
}

// NotifyStatusChanged only reports cancellations: the other transitions are
// made by the owner.
func (n *TelegramNotifier) NotifyStatusChanged(ctx context.Context, listing *domain.Listing, r *domain.Reservation) {
	if r.Status != domain.ReservationStatusCancelled {
		return
	}
	n.send(ctx, listing.OwnerChatID, cancelledText(listing, r))
}

func createdText(listing *domain.Listing, r *domain.Reservation) string {
	text := fmt.Sprintf(
		"*Nouvelle réservation*\n\n"+"Mission : %s\n"+"Date (UTC) : %s\n"+"Bénévole : %s (%s)",
		escape(listing.Title),
		listing.MissionDate.UTC().Format(dateLayout),
		escape(r.ActorName),
		escape(r.ActorContact),
	)
	if r.Message != "" {
		text += "\n\n" + escape(r.Message)
	}
	return text
}

func cancelledText(listing *domain.Listing, r *domain.Reservation) string {
	return fmt.Sprintf(
		"*Réservation annulée*\n\n"+"Mission : %s\n"+"Date (UTC) : %s\n"+"Bénévole : %s",
		escape(listing.Title),
		listing.MissionDate.UTC().Format(dateLayout),
		escape(r.ActorName),
	)
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
