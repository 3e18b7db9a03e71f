package reporter

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"au-jobs-scraper/internal/config"
	"au-jobs-scraper/internal/models"
)

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramReporter) SendJob(job models.JobPosting) error {
	text := fmt.Sprintf(
		"🔥 <b>%s</b>\n"+
			"🏢 %s\n"+
			"🎯 %s (%s)\n"+
			"💰 %s\n"+
			"📍 %s\n"+
			"🔖 %s\n"+
			"🔗 <a href=\"%s\">View Job</a>",
		job.JobTitle,
		job.Company,
		job.JobRole,
		job.Seniority,
		salaryLine(job.Salary),
		locationLine(job.Locations),
		strings.Join(job.Platforms, ", "),
		firstURL(job.SourceURLs),
	)
	return t.SendMessage(text)
}

func (t *TelegramReporter) SendStatus(message string) error {
	return t.SendMessage("ℹ️ " + message)
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>Scraper Error</b>:\n%v", errReq)
	return t.SendMessage(text)
}

func salaryLine(s *models.SalaryRange) string {
	if s == nil {
		return "Not listed"
	}
	if s.AnnualMin == s.AnnualMax {
		return fmt.Sprintf("$%.0f/yr", s.AnnualMin)
	}
	return fmt.Sprintf("$%.0f - $%.0f/yr", s.AnnualMin, s.AnnualMax)
}

func locationLine(locs []models.Location) string {
	if len(locs) == 0 {
		return "N/A"
	}
	parts := make([]string, len(locs))
	for i, l := range locs {
		parts[i] = l.String()
	}
	return strings.Join(parts, "; ")
}

func firstURL(urls []string) string {
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}
