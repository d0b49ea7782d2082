package telegram

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/app"
	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/config"
	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/metrics"
	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/plan"
	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/storage"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot wraps the Telegram API and the planner application.
type Bot struct {
	api *tgbotapi.BotAPI
	app *app.App
	cfg *config.Config
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(cfg *config.Config, application *app.App) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	wh, _ := tgbotapi.NewWebhook(cfg.TelegramWebhookURL)
	resp, err := bot.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", cfg.TelegramWebhookURL, err)
	}
	log.Printf("Webhook set response: %s", resp.Description)

	return &Bot{api: bot, app: application, cfg: cfg}, nil
}

// RegisterHandlers registers the webhook handler with the default HTTP mux.
func (b *Bot) RegisterHandlers() {
	http.HandleFunc("/webhook", b.handleWebhook)
	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.api.HandleUpdate(r)
	if err != nil {
		log.Printf("Error parsing update: %v", err)
		return
	}

	if update.Message == nil {
		return
	}

	isAllowed := false
	for _, id := range b.cfg.TelegramAllowedUserIDs {
		if update.Message.From.ID == id {
			isAllowed = true
			break
		}
	}

	if !isAllowed {
		log.Printf("⚠️ Unauthorized access attempt from UserID: %d (@%s)", update.Message.From.ID, update.Message.From.UserName)
		return
	}

	go b.processMessage(update.Message)
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	fields := strings.Fields(msg.Text)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "/plan":
		b.handlePlanCommand(msg, fields[1:])
	case "/tdee":
		b.handleTDEECommand(msg, fields[1:])
	case "/foods":
		b.handleFoodsCommand(msg)
	case "/status":
		b.handleStatusCommand(msg)
	default:
		b.reply(msg.Chat.ID, helpText)
	}
}

const helpText = `🥗 *Carb Cycling Planner*

/plan <weight-kg> <endomorph|mesomorph|ectomorph> <beginner|experienced|g-per-kg> <cycle-days> - compute and save a plan
/plan - recompute from your saved profile
/tdee <male|female> <age> <height-cm> <weight-kg> <activity> - BMR/TDEE
/foods - list your food catalog
/status - health report (admin only)`

func (b *Bot) handlePlanCommand(msg *tgbotapi.Message, args []string) {
	ctx := context.Background()
	userID := fmt.Sprintf("%d", msg.From.ID)

	if len(args) == 0 {
		p, err := b.app.ComputePlanForUser(ctx, userID)
		if err != nil {
			b.replyError(msg.Chat.ID, err)
			return
		}
		b.reply(msg.Chat.ID, formatPlanMarkdown(p))
		return
	}

	if len(args) != 4 {
		b.reply(msg.Chat.ID, "Usage: /plan <weight-kg> <body-type> <protein-level> <cycle-days>")
		return
	}

	req, err := parsePlanArgs(args)
	if err != nil {
		b.replyError(msg.Chat.ID, err)
		return
	}

	if err := b.app.SaveProfile(ctx, userID, storage.StoredProfile{FixedTable: req}); err != nil {
		b.replyError(msg.Chat.ID, err)
		return
	}

	p, err := b.app.ComputeAndRecord(ctx, userID, req)
	if err != nil {
		b.replyError(msg.Chat.ID, err)
		return
	}
	b.reply(msg.Chat.ID, formatPlanMarkdown(p))
}

// parsePlanArgs builds a fixed-table request from the /plan arguments. The
// protein argument is either a preset level name or a numeric g/kg value,
// which selects the custom level.
func parsePlanArgs(args []string) (*plan.FixedTableRequest, error) {
	weight, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return nil, fmt.Errorf("weight must be a number, got %q", args[0])
	}

	req := &plan.FixedTableRequest{
		WeightKg: weight,
		BodyType: plan.BodyType(strings.ToLower(args[1])),
	}

	switch lvl := strings.ToLower(args[2]); lvl {
	case string(plan.ProteinBeginner), string(plan.ProteinExperienced):
		req.ProteinLevel = plan.ProteinLevel(lvl)
	default:
		perKg, err := strconv.ParseFloat(lvl, 64)
		if err != nil {
			return nil, fmt.Errorf("protein must be a level name or g/kg value, got %q", args[2])
		}
		req.ProteinLevel = plan.ProteinCustom
		req.ProteinPerKg = perKg
	}

	req.CycleDays, err = strconv.Atoi(args[3])
	if err != nil {
		return nil, fmt.Errorf("cycle days must be a number, got %q", args[3])
	}
	return req, nil
}

func (b *Bot) handleTDEECommand(msg *tgbotapi.Message, args []string) {
	if len(args) != 5 {
		b.reply(msg.Chat.ID, "Usage: /tdee <male|female> <age> <height-cm> <weight-kg> <activity>")
		return
	}

	age, err1 := strconv.Atoi(args[1])
	height, err2 := strconv.ParseFloat(args[2], 64)
	weight, err3 := strconv.ParseFloat(args[3], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		b.reply(msg.Chat.ID, "Age, height and weight must be numbers.")
		return
	}

	factor, err := plan.ResolveActivityFactor(strings.ToLower(args[4]), 0)
	if err != nil {
		b.replyError(msg.Chat.ID, err)
		return
	}

	bmr := plan.ComputeBMR(plan.Sex(strings.ToLower(args[0])), age, height, weight)
	tdee := plan.ComputeTDEE(bmr, factor)
	b.reply(msg.Chat.ID, fmt.Sprintf("🔥 *BMR:* %d kcal\n*TDEE:* %d kcal", bmr, tdee))
}

func (b *Bot) handleFoodsCommand(msg *tgbotapi.Message) {
	catalog, err := b.app.Catalog(context.Background(), fmt.Sprintf("%d", msg.From.ID))
	if err != nil {
		b.replyError(msg.Chat.ID, err)
		return
	}

	var sb strings.Builder
	sb.WriteString("🍎 *Food Catalog*\n\n")
	for _, f := range catalog {
		sb.WriteString(fmt.Sprintf("• %s: %.1fC/%.1fP/%.1fF, %d kcal (%s)\n",
			f.Name, f.Macros.Carbs, f.Macros.Protein, f.Macros.Fat, f.Macros.Calories, f.ServingUnit))
	}
	b.reply(msg.Chat.ID, sb.String())
}

func (b *Bot) handleStatusCommand(msg *tgbotapi.Message) {
	if msg.From.ID != b.cfg.AdminTelegramID {
		b.reply(msg.Chat.ID, "⛔ *Access Denied*: Admin only.")
		return
	}

	health := metrics.GetSysHealth(b.cfg.DatabasePath)

	var sb strings.Builder
	sb.WriteString("📊 *Health Report*\n\n")
	sb.WriteString(fmt.Sprintf("• RAM: %dMB (Alloc) / %dMB (Sys)\n", health.AllocMB, health.SysMB))
	sb.WriteString(fmt.Sprintf("• Goroutines: %d\n", health.Goroutines))
	sb.WriteString(fmt.Sprintf("• Database: %s\n", health.DatabaseSize))
	b.reply(msg.Chat.ID, sb.String())
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	b.api.Send(msg)
}

func (b *Bot) replyError(chatID int64, err error) {
	safeErr := strings.ReplaceAll(err.Error(), "`", "'")
	b.reply(chatID, fmt.Sprintf("❌ *Error:*\n```\n%v\n```", safeErr))
}

// formatPlanMarkdown renders a computed plan for a Telegram reply.
func formatPlanMarkdown(p *plan.NutritionPlan) string {
	var sb strings.Builder
	sb.WriteString("📅 *Carb Cycling Plan*\n\n")

	for _, d := range p.DailyPlans {
		sb.WriteString(fmt.Sprintf("*Day %d* (%s): %dC / %dP / %dF = %d kcal\n",
			d.DayIndex, d.DayType, d.CarbsGrams, d.ProteinGrams, d.FatGrams, d.CaloriesKcal))
	}

	sb.WriteString(fmt.Sprintf("\n🧮 *Totals:* %dg carbs, %dg fat, %dg protein/day, %d kcal\n",
		p.Summary.TotalCarbsGrams, p.Summary.TotalFatGrams, p.Summary.DailyProteinGrams, p.Summary.TotalCaloriesKcal))
	if p.Summary.TDEEKcal > 0 {
		sb.WriteString(fmt.Sprintf("🔥 *TDEE:* %d kcal\n", p.Summary.TDEEKcal))
	}
	return sb.String()
}
