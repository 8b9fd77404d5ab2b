package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"outfitapi/models"
	"outfitapi/recommender"
	"outfitapi/textutil"

	"github.com/getsentry/sentry-go"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const helpMessage = "Send `/fit <occasion> [temperature] [rain]` to get an outfit from your closet.\n" +
	"Occasions: casual, business, formal, athleisure.\n" +
	"Example: `/fit business 8 rain`"

var ErrMissingOccasion = errors.New("occasion is required")

func EscapeMessage(message string) string {
	r := strings.NewReplacer(
		"_", "\\_",
		"*", "\\*",
		"[", "\\[",
		"`", "\\`",
	)
	return r.Replace(message)
}

// ParseFitCommand reads "<occasion> [temperature] [rain|dry]". The temperature
// may carry a trailing c or °c.
func ParseFitCommand(args string) (recommender.Request, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return recommender.Request{}, ErrMissingOccasion
	}
	req := recommender.Request{Occasion: fields[0]}
	for _, field := range fields[1:] {
		token := textutil.Fold(field)
		switch token {
		case "rain", "raining", "rainy", "wet":
			raining := true
			req.Weather.Raining = &raining
			continue
		case "dry":
			raining := false
			req.Weather.Raining = &raining
			continue
		}
		number := strings.TrimSuffix(strings.TrimSuffix(token, "c"), "°")
		temperature, err := strconv.ParseFloat(number, 64)
		if err != nil || math.IsNaN(temperature) || math.IsInf(temperature, 0) {
			return recommender.Request{}, fmt.Errorf("unrecognized argument %q", field)
		}
		req.Weather.TemperatureC = &temperature
	}
	return req, nil
}

func FormatOutfit(outfit models.Outfit) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s* outfit", EscapeMessage(outfit.Occasion))
	if len(outfit.Items) > 0 {
		b.WriteString(":\n")
		for _, item := range outfit.Items {
			fmt.Fprintf(&b, "• %s (%s)\n", EscapeMessage(item.Name), EscapeMessage(item.Category))
		}
	} else {
		b.WriteString("\n")
	}
	if outfit.Notes != "" {
		fmt.Fprintf(&b, "_%s_", EscapeMessage(outfit.Notes))
	}
	return strings.TrimRight(b.String(), "\n")
}

func ownerFor(user *tgbotapi.User) string {
	if user == nil {
		return ""
	}
	if user.UserName != "" {
		return "tg:" + user.UserName
	}
	return fmt.Sprintf("tg:%d", user.ID)
}

// reply builds the answer to a single message, nil for messages the bot ignores.
func reply(ctx context.Context, engine *recommender.Engine, message *tgbotapi.Message) *tgbotapi.MessageConfig {
	if message == nil || !message.IsCommand() {
		return nil
	}
	msg := tgbotapi.NewMessage(message.Chat.ID, "")
	msg.ParseMode = "markdown"
	switch message.Command() {
	case "start", "help":
		msg.Text = helpMessage
	case "fit":
		req, err := ParseFitCommand(message.CommandArguments())
		if err != nil {
			msg.Text = fmt.Sprintf("%s\n\n%s", EscapeMessage(err.Error()), helpMessage)
			break
		}
		req.OwnerID = ownerFor(message.From)
		outfit, err := engine.Recommend(ctx, req)
		if err != nil {
			sentry.CaptureException(err)
			log.Printf("[Telegram] recommendation failed for %s: %v", req.OwnerID, err)
			msg.Text = "Could not load your closet, please try again later."
			break
		}
		msg.Text = FormatOutfit(*outfit)
	default:
		return nil
	}
	return &msg
}

func RunFitBot(engine *recommender.Engine) {
	bot, err := tgbotapi.NewBotAPI(os.Getenv("TG_TOKEN"))
	if err != nil {
		log.Panicf("[Telegram] bot init failed: %v", err)
	}
	bot.Debug = os.Getenv("ENV") == "local"

	log.Printf("[Telegram] authorized on account %s", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := bot.GetUpdatesChan(u)
	for update := range updates {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		msg := reply(ctx, engine, update.Message)
		cancel()
		if msg == nil {
			continue
		}
		if _, err := bot.Send(msg); err != nil {
			log.Printf("[Telegram] send failed: %v", err)
		}
	}
}
