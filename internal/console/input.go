// Package console реализует текстовый интерфейс магазина: ввод, меню и конечный автомат сеанса.
package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

// ErrInputClosed возвращается, когда источник ввода исчерпан.
var ErrInputClosed = errors.New("input closed")

// Input поставляет строки пользовательского ввода. ReadLine блокируется до появления строки или отмены ctx.
type Input interface {
	ReadLine(ctx context.Context) (string, error)
}

// LineReader читает строки из io.Reader в отдельной горутине, чтобы ожидание ввода можно было прервать контекстом.
type LineReader struct {
	lines chan string
	err   error
}

// NewLineReader запускает чтение строк из r.
func NewLineReader(r io.Reader) *LineReader {
	lr := &LineReader{lines: make(chan string)}
	go lr.pump(bufio.NewScanner(r))
	return lr
}

func (lr *LineReader) pump(sc *bufio.Scanner) {
	defer close(lr.lines)
	for sc.Scan() {
		lr.lines <- strings.TrimRight(sc.Text(), "\r")
	}
	lr.err = sc.Err()
}

// ReadLine возвращает очередную строку без перевода строки.
func (lr *LineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if !ok {
			if lr.err != nil {
				return "", lr.err
			}
			return "", ErrInputClosed
		}
		return line, nil
	}
}
