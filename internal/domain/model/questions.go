package model

import (
	"errors"
	"fmt"
	"strings"
)

// OptionsCount количество вариантов ответа в каждом вопросе
const OptionsCount = 4

// Question представляет вопрос викторины
type Question struct {
	ID          int      `json:"id" yaml:"id"`
	Prompt      string   `json:"prompt" yaml:"prompt"`
	Options     []string `json:"options" yaml:"options"`
	Correct     int      `json:"correct" yaml:"correct"` // номер правильного варианта, 1..4
	Explanation string   `json:"explanation" yaml:"explanation"`
}

// CorrectText возвращает текст правильного варианта
func (q Question) CorrectText() string {
	return q.Options[q.Correct-1]
}

// Validate проверяет, что вопрос можно показать пользователю
func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return errors.New("empty prompt")
	}
	if len(q.Options) != OptionsCount {
		return fmt.Errorf("expected %d options, got %d", OptionsCount, len(q.Options))
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("option %d is empty", i+1)
		}
	}
	if q.Correct < 1 || q.Correct > OptionsCount {
		return fmt.Errorf("correct option %d out of range 1..%d", q.Correct, OptionsCount)
	}
	return nil
}
