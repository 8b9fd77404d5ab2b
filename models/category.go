package models

import (
	"database/sql/driver"
	"fmt"

	"outfitapi/textutil"

	"github.com/go-playground/validator"
)

type Category string

const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryOuterwear Category = "outerwear"
	CategoryShoes     Category = "shoes"
	CategoryAccessory Category = "accessory"
)

// categoryAliases maps every accepted spelling to its canonical role.
var categoryAliases = map[string]Category{
	"top":       CategoryTop,
	"bottom":    CategoryBottom,
	"outerwear": CategoryOuterwear,
	"jacket":    CategoryOuterwear,
	"coat":      CategoryOuterwear,
	"shoes":     CategoryShoes,
	"shoe":      CategoryShoes,
	"accessory": CategoryAccessory,
}

// ParseCategory lower-cases raw and resolves aliases. ok is false for
// anything outside the vocabulary.
func ParseCategory(raw string) (Category, bool) {
	c, ok := categoryAliases[textutil.Fold(raw)]
	return c, ok
}

func (c *Category) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*c = Category(v)
	case []byte:
		*c = Category(v)
	case nil:
		*c = ""
	default:
		return fmt.Errorf("unsupported category value %T", value)
	}
	return nil
}

func (c Category) Value() (driver.Value, error) {
	return string(c), nil
}

func (c Category) String() string {
	return string(c)
}

func ValidateCategory(fl validator.FieldLevel) bool {
	_, ok := ParseCategory(fl.Field().String())
	return ok
}
