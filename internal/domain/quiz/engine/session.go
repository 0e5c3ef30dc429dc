package engine

import (
	"fmt"
	"time"
)

// Session прогресс викторины одного пользователя
type Session struct {
	ID        string
	Order     []int // перестановка индексов банка, фиксирована на всё время сессии
	Cursor    int   // позиция следующего вопроса в Order
	Answered  int
	Correct   int
	Finished  bool
	StartedAt time.Time
	LastSeen  time.Time
}

// Total количество вопросов в сессии
func (s *Session) Total() int {
	return len(s.Order)
}

// mustBeConsistent проверяет инварианты сессии. Нарушение означает ошибку в коде, а не во вводе.
func (s *Session) mustBeConsistent() {
	switch {
	case s.Cursor < 0 || s.Cursor > len(s.Order):
		panic(fmt.Sprintf("quiz session %s: cursor %d out of bounds [0, %d]", s.ID, s.Cursor, len(s.Order)))
	case s.Answered != s.Cursor:
		panic(fmt.Sprintf("quiz session %s: answered %d != cursor %d", s.ID, s.Answered, s.Cursor))
	case s.Correct < 0 || s.Correct > s.Answered:
		panic(fmt.Sprintf("quiz session %s: correct %d > answered %d", s.ID, s.Correct, s.Answered))
	case s.Finished != (s.Answered == len(s.Order)):
		panic(fmt.Sprintf("quiz session %s: finished=%t with %d/%d answered", s.ID, s.Finished, s.Answered, len(s.Order)))
	}
}
