package form

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/product-catalog/internal/model"
)

// Field names one editable input of the form.
type Field string

const (
	FieldTitle    Field = "title"
	FieldPrice    Field = "price"
	FieldTaxes    Field = "taxes"
	FieldAds      Field = "ads"
	FieldDiscount Field = "discount"
	FieldCount    Field = "count"
	FieldCategory Field = "category"
)

// Fields lists the editable inputs in display order.
var Fields = []Field{
	FieldTitle,
	FieldPrice,
	FieldTaxes,
	FieldAds,
	FieldDiscount,
	FieldCount,
	FieldCategory,
}

// ParseField resolves a field by name, ignoring case.
func ParseField(name string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Fields {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown field %q", name)
}

// Draft holds the inputs exactly as typed. It is a value: setters return a
// copy and never touch the receiver.
type Draft struct {
	title    string
	price    string
	taxes    string
	ads      string
	discount string
	count    string
	category string
}

// DraftFromProduct preloads a draft from a stored row. Count has no column
// and starts blank.
func DraftFromProduct(p model.Product) Draft {
	return Draft{
		title:    p.Title,
		price:    p.Price.String(),
		taxes:    p.Taxes.String(),
		ads:      p.Ads.String(),
		discount: p.Discount.String(),
		category: p.Category,
	}
}

// With returns a copy of d with field set to value.
func (d Draft) With(field Field, value string) (Draft, error) {
	switch field {
	case FieldTitle:
		d.title = value
	case FieldPrice:
		d.price = value
	case FieldTaxes:
		d.taxes = value
	case FieldAds:
		d.ads = value
	case FieldDiscount:
		d.discount = value
	case FieldCount:
		d.count = value
	case FieldCategory:
		d.category = value
	default:
		return d, fmt.Errorf("unknown field %q", field)
	}
	return d, nil
}

// Get returns the raw text of field.
func (d Draft) Get(field Field) string {
	switch field {
	case FieldTitle:
		return d.title
	case FieldPrice:
		return d.price
	case FieldTaxes:
		return d.taxes
	case FieldAds:
		return d.ads
	case FieldDiscount:
		return d.discount
	case FieldCount:
		return d.count
	case FieldCategory:
		return d.category
	default:
		return ""
	}
}

func (d Draft) Title() string    { return d.title }
func (d Draft) Price() string    { return d.price }
func (d Draft) Taxes() string    { return d.taxes }
func (d Draft) Ads() string      { return d.ads }
func (d Draft) Discount() string { return d.discount }
func (d Draft) Count() string    { return d.count }
func (d Draft) Category() string { return d.category }

// Total is price + taxes + ads - discount, with blank or unparseable inputs
// read as zero.
func (d Draft) Total() decimal.Decimal {
	return model.Product{
		Price:    money(d.price),
		Taxes:    money(d.taxes),
		Ads:      money(d.ads),
		Discount: money(d.discount),
	}.ComputedTotal()
}

// IsZero reports whether every input is blank.
func (d Draft) IsZero() bool {
	return d == Draft{}
}

func money(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return v
}
