package message_handler

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/dto"
	"gopkg.in/telebot.v4"
)

// buttonsPerRow количество кнопок в строке клавиатуры подсказок
const buttonsPerRow = 4

// Dispatcher формирует ответ на текст пользователя
type Dispatcher interface {
	Dispatch(ctx context.Context, userID, text string) dto.Reply
}

// MessageHandler обрабатывает /start и любые текстовые сообщения
type MessageHandler struct {
	dispatcher Dispatcher
	timeout    time.Duration
	logger     *log.Logger
}

// NewMessageHandler возвращает структуру обработчика
func NewMessageHandler(dispatcher Dispatcher, timeout time.Duration, logger *log.Logger) *MessageHandler {
	if logger == nil {
		logger = log.Default()
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &MessageHandler{dispatcher: dispatcher, timeout: timeout, logger: logger}
}

// Handle передаёт текст диспетчеру и отправляет ответ с клавиатурой подсказок.
// Ошибка отправки логируется, обработчик всегда возвращает nil.
func (h *MessageHandler) Handle(c telebot.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}
	userID := strconv.FormatInt(sender.ID, 10)

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	reply := h.dispatcher.Dispatch(ctx, userID, c.Text())

	if err := c.Send(reply.Text, &telebot.SendOptions{ReplyMarkup: Keyboard(reply.QuickReplies)}); err != nil {
		h.logger.Printf("Failed to send reply to user %s: %v", userID, err)
	}
	return nil
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *MessageHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}

// Keyboard строит одноразовую клавиатуру из подсказок. Без подсказок клавиатура убирается.
func Keyboard(quick []string) *telebot.ReplyMarkup {
	if len(quick) == 0 {
		return &telebot.ReplyMarkup{RemoveKeyboard: true}
	}

	markup := &telebot.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	rows := make([]telebot.Row, 0, (len(quick)+buttonsPerRow-1)/buttonsPerRow)
	for start := 0; start < len(quick); start += buttonsPerRow {
		end := min(start+buttonsPerRow, len(quick))
		btns := make([]telebot.Btn, 0, end-start)
		for _, label := range quick[start:end] {
			btns = append(btns, markup.Text(label))
		}
		rows = append(rows, markup.Row(btns...))
	}
	markup.Reply(rows...)
	return markup
}
