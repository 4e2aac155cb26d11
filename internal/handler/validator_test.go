package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSlotTag(t *testing.T) {
	InitValidator()

	type q struct {
		Slot string `validate:"slot"`
	}

	assert.NoError(t, GetValidator().ValidateStruct(q{Slot: ""}))
	assert.NoError(t, GetValidator().ValidateStruct(q{Slot: "all"}))
	assert.NoError(t, GetValidator().ValidateStruct(q{Slot: "hair"}))
	assert.NoError(t, GetValidator().ValidateStruct(q{Slot: "accessory2"}))
	assert.Error(t, GetValidator().ValidateStruct(q{Slot: "hat"}))
}

func TestValidateListingSortTag(t *testing.T) {
	InitValidator()

	type q struct {
		Sort string `validate:"listingsort"`
	}

	assert.NoError(t, GetValidator().ValidateStruct(q{Sort: ""}))
	assert.NoError(t, GetValidator().ValidateStruct(q{Sort: "recent"}))
	assert.NoError(t, GetValidator().ValidateStruct(q{Sort: "price-asc"}))
	assert.NoError(t, GetValidator().ValidateStruct(q{Sort: "price-desc"}))
	assert.Error(t, GetValidator().ValidateStruct(q{Sort: "alphabetical"}))
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()

	type req struct {
		UID   string `validate:"required"`
		Email string `validate:"omitempty,email"`
	}

	err := GetValidator().ValidateStruct(req{Email: "nope"})
	errs := FormatValidationError(err)

	assert.Equal(t, "This field is required", errs["uid"])
	assert.Equal(t, "Invalid email format", errs["email"])
}
