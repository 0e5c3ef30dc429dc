package model

import "math"

// UserStats общая статистика ответов пользователя за все сессии
type UserStats struct {
	Answered int `json:"answered"`
	Correct  int `json:"correct"`
}

// Rate возвращает процент правильных ответов, округлённый до десятых
func (s UserStats) Rate() float64 {
	return Rate(s.Correct, s.Answered)
}

// Rate считает correct/answered*100 с округлением до одного знака
func Rate(correct, answered int) float64 {
	if answered == 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(answered)*1000) / 10
}
