package engine

import "errors"

// Ожидаемые ошибки движка. Все они исправимы пользователем и показываются ему как подсказка.
var (
	// ErrNoSession операция требует сессию, которой нет
	ErrNoSession = errors.New("quiz session not started")
	// ErrAlreadyFinished операция требует незавершённую сессию
	ErrAlreadyFinished = errors.New("quiz session already finished")
	// ErrInvalidChoice номер ответа вне диапазона 1..4
	ErrInvalidChoice = errors.New("answer must be between 1 and 4")
)
