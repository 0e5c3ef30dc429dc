package middleware

import (
	"log"
	"strconv"

	"github.com/IT-Nick/quizbot/internal/domain/dto"
	tele "gopkg.in/telebot.v4"
)

// DebugUserActions логирует действие пользователя и состояние его викторины после обработки.
func DebugUserActions(logger *log.Logger, status func(userID string) dto.Status) tele.MiddlewareFunc {
	if logger == nil {
		logger = log.Default()
	}
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			err := next(c)

			user := c.Sender()
			if user == nil {
				return err
			}

			var action string
			if msg := c.Message(); msg != nil {
				action = "Message: " + msg.Text
			} else if cb := c.Callback(); cb != nil {
				action = "Callback: " + cb.Data
			} else {
				action = "Unknown action"
			}

			st := status(strconv.FormatInt(user.ID, 10))
			logger.Printf("DEBUG: User: %s (ID: %d), Quiz: started=%t %d/%d correct=%d finished=%t, Action: %s, Error: %v",
				user.FirstName, user.ID, st.Started, st.Answered, st.Total, st.Correct, st.Finished, action, err)
			return err
		}
	}
}
