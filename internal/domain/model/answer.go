package model

import "time"

// AnswerRecord представляет ответ пользователя на вопрос викторины
type AnswerRecord struct {
	UserID     string    `json:"user_id"`
	SessionID  string    `json:"session_id"`
	QuestionID int       `json:"question_id"`
	Selected   int       `json:"selected"`
	IsCorrect  bool      `json:"is_correct"`
	AnsweredAt time.Time `json:"answered_at"`
}
