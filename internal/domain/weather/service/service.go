package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/IT-Nick/quizbot/internal/domain/weather/client"
)

// City город из справочника погоды
type City struct {
	Name      string // японское название
	NameEn    string
	Latitude  float64
	Longitude float64
}

// Cities поддерживаемые города, первый используется по умолчанию
var Cities = []City{
	{Name: "東京", NameEn: "Tokyo", Latitude: 35.676, Longitude: 139.650},
	{Name: "名古屋", NameEn: "Nagoya", Latitude: 35.1815, Longitude: 136.9066},
	{Name: "大阪", NameEn: "Osaka", Latitude: 34.6937, Longitude: 135.5023},
}

// Fetcher источник текущей погоды
type Fetcher interface {
	CurrentWeather(ctx context.Context, lat, lon float64) (client.Current, error)
}

// WeatherService отвечает на вопросы о погоде
type WeatherService struct {
	fetcher Fetcher
	logger  *log.Logger
}

// NewWeatherService создает новый экземпляр WeatherService
func NewWeatherService(fetcher Fetcher, logger *log.Logger) *WeatherService {
	if logger == nil {
		logger = log.Default()
	}
	return &WeatherService{fetcher: fetcher, logger: logger}
}

// PickCity ищет город в тексте по японскому или английскому названию
func PickCity(text string) City {
	lower := strings.ToLower(text)
	for _, c := range Cities {
		if strings.Contains(text, c.Name) || strings.Contains(lower, strings.ToLower(c.NameEn)) {
			return c
		}
	}
	return Cities[0]
}

// Reply формирует текст ответа о погоде. Ошибки не возвращаются, а превращаются в текст.
func (s *WeatherService) Reply(ctx context.Context, query string) string {
	city := PickCity(query)

	cur, err := s.fetcher.CurrentWeather(ctx, city.Latitude, city.Longitude)
	if err != nil {
		s.logger.Printf("Weather lookup for %s failed: %v", city.NameEn, err)
		return fmt.Sprintf("%sの天気取得に失敗しました。少し待って再度お試しください。", city.Name)
	}

	return fmt.Sprintf("%sの天気: 気温 %s°C / 風速 %s m/s", city.Name, formatNumber(cur.Temperature), formatNumber(cur.WindSpeed))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
