package utils

import (
	"errors"
	"time"
)

var ErrEmptyDate = errors.New("data não informada")

// ParseDate lê datas no formato YYYY-MM-DD usado pelos parâmetros since/until
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, ErrEmptyDate
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
