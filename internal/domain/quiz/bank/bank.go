package bank

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"gopkg.in/yaml.v3"
)

//go:embed questions.json
var defaultQuestions []byte

// Bank неизменяемый упорядоченный набор вопросов. Создаётся один раз при старте процесса.
type Bank struct {
	questions []model.Question
}

// New проверяет вопросы и создаёт банк. Срез копируется, чтобы вызывающий не мог изменить банк.
func New(questions []model.Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, errors.New("question bank is empty")
	}

	ids := make(map[int]bool, len(questions))
	qs := make([]model.Question, len(questions))
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question #%d (id %d): %w", i+1, q.ID, err)
		}
		if ids[q.ID] {
			return nil, fmt.Errorf("question #%d: duplicate id %d", i+1, q.ID)
		}
		ids[q.ID] = true

		q.Options = append([]string(nil), q.Options...)
		qs[i] = q
	}

	return &Bank{questions: qs}, nil
}

// Default возвращает встроенный банк вопросов
func Default() (*Bank, error) {
	var qs []model.Question
	if err := json.Unmarshal(defaultQuestions, &qs); err != nil {
		return nil, fmt.Errorf("failed to parse embedded questions: %w", err)
	}
	return New(qs)
}

// Load загружает банк из файла. Формат выбирается по расширению: .json, .yaml или .yml.
// Пустой путь означает встроенный банк.
func Load(path string) (*Bank, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank %s: %w", path, err)
	}

	var qs []model.Question
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &qs)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &qs)
	default:
		return nil, fmt.Errorf("unsupported question bank format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse question bank %s: %w", path, err)
	}

	return New(qs)
}

// Len количество вопросов в банке
func (b *Bank) Len() int {
	return len(b.questions)
}

// At возвращает вопрос по индексу
func (b *Bank) At(i int) model.Question {
	return b.questions[i]
}
