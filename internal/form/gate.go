package form

import "github.com/tuanvumaihuynh/product-catalog/pkg/validator"

// submitGate is what a draft must satisfy before it is sent. Count is read
// like a number input: blank passes as zero.
type submitGate struct {
	Title    string `validate:"required"`
	Price    string `validate:"required"`
	Category string `validate:"required"`
	Count    string `validate:"looseNumber,looseLt=100"`
}

func checkGate(v validator.Validator, d Draft) error {
	return v.Validate(submitGate{
		Title:    d.title,
		Price:    d.price,
		Category: d.category,
		Count:    d.count,
	})
}
