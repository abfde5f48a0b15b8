// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srinivasroopa42-commits/royal-cart/internal/models"
)

func TestValidDeliveryPhone(t *testing.T) {
	assert.True(t, ValidDeliveryPhone("9876543210"))
	assert.True(t, ValidDeliveryPhone("+91 98765 43210"))
	assert.True(t, ValidDeliveryPhone("98-76-54-32-10"))

	assert.False(t, ValidDeliveryPhone("987654321"), "nine digits is short")
	assert.False(t, ValidDeliveryPhone(""))
	assert.False(t, ValidDeliveryPhone("call me maybe"))
}

func TestValidDeliveryAddress(t *testing.T) {
	assert.True(t, ValidDeliveryAddress("42 MG Road, Bengaluru 560001"))
	assert.True(t, ValidDeliveryAddress("exactly10c"))

	assert.False(t, ValidDeliveryAddress("short"))
	assert.False(t, ValidDeliveryAddress("         a         "), "whitespace does not count")
	assert.False(t, ValidDeliveryAddress("Set Locat"))
	assert.False(t, ValidDeliveryAddress(models.DefaultAddressPlaceholder), "placeholder never saves as a confirmed address")
	assert.False(t, ValidDeliveryAddress("  Set Location  "))
}

func TestValidateStructDeliveryTags(t *testing.T) {
	type details struct {
		Address string `validate:"required,delivery_address"`
		Phone   string `validate:"required,delivery_phone"`
	}

	assert.Empty(t, ValidateStruct(&details{
		Address: "Flat 402, B-Block, MG Road, 560001",
		Phone:   "+91 98765 43210",
	}))

	errs := ValidateStruct(&details{Address: "short", Phone: "123"})
	assert.Len(t, errs, 2)
	assert.Equal(t, "address", errs[0].Field)
	assert.Equal(t, "phone", errs[1].Field)

	errs = ValidateStruct(&details{Address: models.DefaultAddressPlaceholder, Phone: "9876543210"})
	assert.Len(t, errs, 1)
	assert.Equal(t, "address", errs[0].Field)
}

func TestCategorySlugValidation(t *testing.T) {
	type input struct {
		Slug string `validate:"category_slug"`
	}

	assert.Empty(t, ValidateStruct(&input{Slug: "fruits-veg"}))
	assert.Empty(t, ValidateStruct(&input{Slug: "tea-coffee"}))

	assert.NotEmpty(t, ValidateStruct(&input{Slug: "Fruits"}))
	assert.NotEmpty(t, ValidateStruct(&input{Slug: "fruits veg"}))
	assert.NotEmpty(t, ValidateStruct(&input{Slug: ""}))
}
