package dto

// QuestionView вопрос, подготовленный для показа пользователю
type QuestionView struct {
	SessionID    string   `json:"session_id"`
	QuestionID   int      `json:"question_id"`
	Ordinal      int      `json:"ordinal"` // порядковый номер, начиная с 1
	Total        int      `json:"total"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	ValidAnswers []string `json:"valid_answers"`
}

// StartResult результат запуска или сброса викторины
type StartResult struct {
	SessionID string        `json:"session_id"`
	Total     int           `json:"total"`
	First     *QuestionView `json:"first,omitempty"` // заполняется, если первый вопрос выдаётся сразу
}

// NextResult результат запроса следующего вопроса
type NextResult struct {
	Completed bool         `json:"completed"` // викторина уже пройдена, вопроса нет
	Question  QuestionView `json:"question"`
	Status    Status       `json:"status"`
}

// MilestoneSummary промежуточный итог, прикладываемый к ответу на рубеже
type MilestoneSummary struct {
	Threshold int     `json:"threshold"`
	Answered  int     `json:"answered"`
	Correct   int     `json:"correct"`
	Rate      float64 `json:"rate"`
	Final     bool    `json:"final"`
}

// AnswerResult результат проверки ответа
type AnswerResult struct {
	SessionID     string            `json:"session_id"`
	QuestionID    int               `json:"question_id"`
	Selected      int               `json:"selected"`
	IsCorrect     bool              `json:"is_correct"`
	CorrectOption int               `json:"correct_option"`
	CorrectText   string            `json:"correct_text"`
	Explanation   string            `json:"explanation"`
	Answered      int               `json:"answered"`
	Correct       int               `json:"correct"`
	Total         int               `json:"total"`
	Finished      bool              `json:"finished"`
	Milestone     *MilestoneSummary `json:"milestone,omitempty"`
}

// Status текущее состояние сессии пользователя
type Status struct {
	Started  bool    `json:"started"`
	Answered int     `json:"answered"`
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	Rate     float64 `json:"rate"`
	Finished bool    `json:"finished"`
}

// HistoryView статистика пользователя за всё время по журналу ответов
type HistoryView struct {
	Enabled  bool    `json:"enabled"`
	Answered int     `json:"answered"`
	Correct  int     `json:"correct"`
	Rate     float64 `json:"rate"`
}
