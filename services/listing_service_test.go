package services_test

import (
	"testing"

	"travelapp/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMakeSlug(t *testing.T) {
	assert.Equal(t, "beach-house-in-da-nang", services.MakeSlug("Beach House in Đà Nẵng"))
	assert.Equal(t, "cozy-loft-downtown", services.MakeSlug("  Cozy Loft / Downtown!  "))
	assert.Equal(t, "", services.MakeSlug("!!!"))
}

func TestMakeUniqueSlug(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	assert.Equal(t, "beach-house-6ba7b810", services.MakeUniqueSlug("Beach House", id))

	// Titles with no usable characters still produce a slug.
	assert.Equal(t, "listing-6ba7b810", services.MakeUniqueSlug("!!!", id))
}
