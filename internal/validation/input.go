// Package validation содержит функции приведения пользовательского ввода к типам домена.
package validation

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotANumber возвращается, если строка не является числом.
	ErrNotANumber = errors.New("not a number")
	// ErrTooPrecise возвращается для денежных сумм с долями меньше цента.
	ErrTooPrecise = errors.New("amount has more than two decimal places")
	// ErrNegative возвращается для отрицательных значений там, где они запрещены.
	ErrNegative = errors.New("value must not be negative")
	// ErrOutOfRange возвращается, если номер пункта меню вне допустимого диапазона.
	ErrOutOfRange = errors.New("selection out of range")
	// ErrTooLarge возвращается для сумм, превышающих MaxAmountDigits знаков в целой части.
	ErrTooLarge = errors.New("amount is too large")
)

// MaxAmountDigits ограничивает длину целой части денежной суммы.
const MaxAmountDigits = 12

// amountPattern допускает только запись вида [-]цифры[.цифры], без экспоненты.
var amountPattern = regexp.MustCompile(`^-?(\d+)(?:\.(\d+))?$`)

// ParseAmount разбирает денежную сумму с точностью до центов. Знак не проверяется.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return decimal.Zero, ErrNotANumber
	}

	m := amountPattern.FindStringSubmatch(s)
	if m == nil {
		return decimal.Zero, ErrNotANumber
	}
	if len(strings.TrimLeft(m[1], "0")) > MaxAmountDigits {
		return decimal.Zero, ErrTooLarge
	}
	if len(strings.TrimRight(m[2], "0")) > 2 {
		return decimal.Zero, ErrTooPrecise
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrNotANumber
	}
	return d, nil
}

// ParsePrice разбирает неотрицательную цену.
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegative
	}
	return d, nil
}

// ParseStock разбирает неотрицательное количество копий.
func ParseStock(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrNotANumber
	}
	if n < 0 {
		return 0, ErrNegative
	}
	return n, nil
}

// ParseSelection разбирает номер пункта меню из диапазона [1, size].
func ParseSelection(s string, size int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrNotANumber
	}
	if n < 1 || n > size {
		return 0, ErrOutOfRange
	}
	return n, nil
}

// IsConfirmed сообщает, является ли ответ согласием ("y" или "yes" в любом регистре).
func IsConfirmed(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
