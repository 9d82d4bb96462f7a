package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/gamestore/internal/validation"
)

// Console связывает источник ввода с выводом и умеет повторять запрос при неверном вводе.
type Console struct {
	in  Input
	out io.Writer
}

// NewConsole создаёт консоль поверх in и out.
func NewConsole(in Input, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

// Printf выводит форматированный текст.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println выводит строку.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Prompt выводит приглашение и возвращает введённую строку без крайних пробелов.
func (c *Console) Prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm задаёт вопрос с ответом y/n.
func (c *Console) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := c.Prompt(ctx, question+" (y/n): ")
	if err != nil {
		return false, err
	}
	return validation.IsConfirmed(answer), nil
}

// Choose печатает меню и возвращает номер выбранного пункта, начиная с 1.
func (c *Console) Choose(ctx context.Context, m menu) (int, error) {
	for {
		for i, item := range m {
			c.Printf("%d - %s\n", i+1, item)
		}
		line, err := c.Prompt(ctx, "Please Select - ")
		if err != nil {
			return 0, err
		}
		n, err := validation.ParseSelection(line, len(m))
		if err != nil {
			c.Println("Invalid selection. Please try again.")
			continue
		}
		return n, nil
	}
}

// PromptAmount запрашивает денежную сумму, пока она не будет введена числом.
func (c *Console) PromptAmount(ctx context.Context, label string) (decimal.Decimal, error) {
	return c.promptDecimal(ctx, label, validation.ParseAmount)
}

// PromptPrice запрашивает неотрицательную цену.
func (c *Console) PromptPrice(ctx context.Context, label string) (decimal.Decimal, error) {
	return c.promptDecimal(ctx, label, validation.ParsePrice)
}

func (c *Console) promptDecimal(ctx context.Context, label string, parse func(string) (decimal.Decimal, error)) (decimal.Decimal, error) {
	for {
		line, err := c.Prompt(ctx, label)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := parse(line)
		if err != nil {
			c.Println(invalidNumberMessage(err))
			continue
		}
		return d, nil
	}
}

// PromptStock запрашивает неотрицательное целое количество.
func (c *Console) PromptStock(ctx context.Context, label string) (int, error) {
	for {
		line, err := c.Prompt(ctx, label)
		if err != nil {
			return 0, err
		}
		n, err := validation.ParseStock(line)
		if err != nil {
			c.Println(invalidNumberMessage(err))
			continue
		}
		return n, nil
	}
}

func invalidNumberMessage(err error) string {
	switch {
	case errors.Is(err, validation.ErrTooPrecise):
		return "Amounts are limited to cents. Please try again."
	case errors.Is(err, validation.ErrNegative):
		return "Value must not be negative. Please try again."
	case errors.Is(err, validation.ErrTooLarge):
		return "Amount is too large. Please try again."
	default:
		return "Invalid number. Please try again."
	}
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
