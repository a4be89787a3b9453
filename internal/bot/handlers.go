package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonTopics      = "📚 Topics"
	ButtonPractice    = "🔁 Mistakes"
	ButtonStatistics  = "📊 Statistics"
	ButtonLeaderboard = "🏆 Leaderboard"
	ButtonName        = "👤 Name"
	ButtonHelp        = "ℹ️ Help"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("command without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "name":
		t.stats.setName(message, message.CommandArguments())
	case "stats":
		t.stats.sendStatistics(message.Chat.ID, message.From.ID)
	case "top":
		t.handleTopCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /start")
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "👋 Hola! I help you learn English words from Catalan.\n\n" +
		"✨ What I can do:\n" +
		"• 📖 Study a topic card by card\n" +
		"• 🎯 Play a timed round and earn points\n" +
		"• 🔁 Practice the words you missed\n" +
		"• 🏆 Compare your scores on the leaderboard\n\n" +
		"Use the menu below to start!"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = t.generateMenuKeyboard()
	sendMessage(t.bot, t.log, msg)

	t.play.sendTopics(message.Chat.ID, message.From.ID)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonTopics),
			tgbotapi.NewKeyboardButton(ButtonPractice),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonStatistics),
			tgbotapi.NewKeyboardButton(ButtonLeaderboard),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonName),
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Commands:
/start — show the topics
/name <name> — set your leaderboard name
/stats — your statistics
/top <topic> — leaderboard of a topic
/help — this message

🎯 While playing, just type the English translation.
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) handleTopCommand(message *tgbotapi.Message) {
	topicID := strings.TrimSpace(message.CommandArguments())
	if topicID == "" {
		t.sendLeaderboardMenu(message.Chat.ID, message.From.ID)
		return
	}
	t.stats.sendLeaderboard(message.Chat.ID, message.From.ID, topicID)
}

func (t *TelegramAPI) sendLeaderboardMenu(chatID, userID int64) {
	topics := t.play.game(userID).Topics()

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(topics))
	for _, topic := range topics {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(topic.Emoji+" "+topic.Name, cbTopPrefix+topic.ID),
		))
	}

	msg := tgbotapi.NewMessage(chatID, "🏆 Which leaderboard?")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}
	userID := message.From.ID
	chatID := message.Chat.ID

	switch message.Text {
	case ButtonTopics:
		t.play.sendTopics(chatID, userID)
	case ButtonPractice:
		t.play.handleCallback(&tgbotapi.CallbackQuery{From: message.From, Message: message, Data: cbPractice})
	case ButtonStatistics:
		t.stats.sendStatistics(chatID, userID)
	case ButtonLeaderboard:
		t.sendLeaderboardMenu(chatID, userID)
	case ButtonName:
		t.stats.setName(message, "")
	case ButtonHelp:
		t.handleHelpCommand(message)
	default:
		if t.play.cache.AwaitingName(userID) {
			t.stats.setName(message, message.Text)
			return
		}
		t.play.handleAnswer(message)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}

	if query.Message == nil {
		t.log.Warn("callback without message", zap.Int64("user_id", query.From.ID))
		return
	}

	chatID := query.Message.Chat.ID
	userID := query.From.ID

	switch data := query.Data; {
	case data == cbStats:
		t.stats.sendStatistics(chatID, userID)
	case data == cbBack:
		t.stats.back(chatID, userID)
	case strings.HasPrefix(data, cbTopPrefix):
		t.stats.sendLeaderboard(chatID, userID, strings.TrimPrefix(data, cbTopPrefix))
	default:
		t.play.handleCallback(query)
	}
}
