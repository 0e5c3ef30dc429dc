package middleware

import (
	"errors"
	"fmt"
	"log"

	tele "gopkg.in/telebot.v4"
)

// Recover перехватывает панику в обработчике и превращает её в ошибку.
// Необязательный onError вызывается с этой ошибкой, по умолчанию она логируется.
func Recover(onError ...func(error, tele.Context)) tele.MiddlewareFunc {
	handleError := func(err error, c tele.Context) {
		log.Printf("Recovered from panic: %v", err)
	}
	if len(onError) > 0 && onError[0] != nil {
		handleError = onError[0]
	}

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					var e error
					switch x := r.(type) {
					case error:
						e = x
					case string:
						e = errors.New(x)
					default:
						e = fmt.Errorf("unknown panic: %v", x)
					}
					handleError(e, c)
					err = e
				}
			}()
			return next(c)
		}
	}
}
