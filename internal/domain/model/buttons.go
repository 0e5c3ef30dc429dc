package model

// Константы команд для кнопок быстрого ответа. Текст кнопки совпадает с командой,
// поэтому нажатие кнопки разбирается тем же классификатором, что и ввод с клавиатуры.
// Не следует изменять константы без изменения списка токенов в dispatcher.
const (
	StartKey   = "スタート"
	ResetKey   = "リセット"
	NextKey    = "次"
	StatusKey  = "成績"
	HelpKey    = "ヘルプ"
	HistoryKey = "履歴"
)

// AnswerKeys кнопки выбора варианта ответа
var AnswerKeys = []string{"1", "2", "3", "4"}
