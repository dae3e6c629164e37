package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MenuItem — блюдо в меню. CategoryID — обратная ссылка на категорию-владельца.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  string
}

// Validate проверяет поля позиции, не касаясь существования категории.
func (i MenuItem) Validate() error {
	var errs []error
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, ErrNameRequired)
	}
	if !i.Price.IsPositive() {
		errs = append(errs, ErrPriceNotPositive)
	}
	if strings.TrimSpace(i.CategoryID) == "" {
		errs = append(errs, ErrCategoryRequired)
	}
	return NewValidationError(errs)
}

// MenuCategory — упорядоченная группа позиций меню.
type MenuCategory struct {
	ID    string
	Name  string
	Items []MenuItem
}

// Clone возвращает копию категории с независимым срезом позиций.
func (c MenuCategory) Clone() MenuCategory {
	c.Items = append([]MenuItem(nil), c.Items...)
	return c
}

// SameName сравнивает имена категорий без учёта регистра и пробелов.
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// NewMenuItemRequest — форма добавления позиции. Price приходит строкой из поля ввода.
type NewMenuItemRequest struct {
	Name        string
	Description string
	Price       string
	CategoryID  string
}

// Parse валидирует форму и возвращает позицию без идентификатора.
func (r NewMenuItemRequest) Parse() (MenuItem, error) {
	var errs []error

	name := strings.TrimSpace(r.Name)
	if name == "" {
		errs = append(errs, ErrNameRequired)
	}

	var price decimal.Decimal
	rawPrice := strings.TrimSpace(r.Price)
	if rawPrice == "" {
		errs = append(errs, ErrPriceRequired)
	} else {
		parsed, err := decimal.NewFromString(rawPrice)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%w: %q", ErrPriceInvalid, rawPrice))
		case !parsed.IsPositive():
			errs = append(errs, ErrPriceNotPositive)
		default:
			price = parsed
		}
	}

	categoryID := strings.TrimSpace(r.CategoryID)
	if categoryID == "" {
		errs = append(errs, ErrCategoryRequired)
	}

	if err := NewValidationError(errs); err != nil {
		return MenuItem{}, err
	}

	return MenuItem{
		Name:        name,
		Description: strings.TrimSpace(r.Description),
		Price:       price,
		CategoryID:  categoryID,
	}, nil
}
