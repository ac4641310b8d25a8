package validate

import (
	"regexp"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// phoneRe accepts 10 to 15 digits with an optional leading +.
var phoneRe = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

const (
	maxNameLen        = 50
	maxRoomTypeLen    = 50
	maxDescriptionLen = 255
	maxAge            = 150
)

// CustomerCreate checks the stateless field constraints of a new
// customer. Email uniqueness is a database concern and checked later.
func CustomerCreate(req model.CustomerCreate) error {
	if req.FirstName == "" {
		return fail("first_name", "first name is required")
	}
	if req.LastName == "" {
		return fail("last_name", "last name is required")
	}
	if len(req.FirstName) > maxNameLen {
		return fail("first_name", "first name cannot exceed 50 characters")
	}
	if len(req.LastName) > maxNameLen {
		return fail("last_name", "last name cannot exceed 50 characters")
	}
	if req.Phone != nil && *req.Phone != "" && !phoneRe.MatchString(*req.Phone) {
		return fail("phone", "phone number format is invalid")
	}
	if req.Age < 0 || req.Age > maxAge {
		return fail("age", "age must be between 0 and 150")
	}
	return nil
}

// CustomerPatch checks the fields present in a sparse customer update.
func CustomerPatch(patch model.CustomerPatch) error {
	if patch.FirstName != nil {
		if *patch.FirstName == "" {
			return fail("first_name", "first name is required")
		}
		if len(*patch.FirstName) > maxNameLen {
			return fail("first_name", "first name cannot exceed 50 characters")
		}
	}
	if patch.LastName != nil {
		if *patch.LastName == "" {
			return fail("last_name", "last name is required")
		}
		if len(*patch.LastName) > maxNameLen {
			return fail("last_name", "last name cannot exceed 50 characters")
		}
	}
	if patch.Phone != nil && *patch.Phone != "" && !phoneRe.MatchString(*patch.Phone) {
		return fail("phone", "phone number format is invalid")
	}
	if patch.Age != nil && (*patch.Age < 0 || *patch.Age > maxAge) {
		return fail("age", "age must be between 0 and 150")
	}
	return nil
}

// RoomFields checks room type and nightly price. The price ceiling comes
// from configuration.
func RoomFields(roomType string, price, priceCeiling float64) error {
	if price <= 0 {
		return fail("price_per_night", "price per night must be greater than zero")
	}
	if price > priceCeiling {
		return fail("price_per_night", "price per night exceeds the maximum allowed")
	}
	if roomType == "" {
		return fail("type", "room type is required")
	}
	if len(roomType) > maxRoomTypeLen {
		return fail("type", "room type cannot exceed 50 characters")
	}
	return nil
}

// RoomPatch checks the fields present in a sparse room update.
func RoomPatch(patch model.RoomPatch, priceCeiling float64) error {
	if patch.PricePerNight != nil {
		if *patch.PricePerNight <= 0 {
			return fail("price_per_night", "price per night must be greater than zero")
		}
		if *patch.PricePerNight > priceCeiling {
			return fail("price_per_night", "price per night exceeds the maximum allowed")
		}
	}
	if patch.Type != nil {
		if *patch.Type == "" {
			return fail("type", "room type is required")
		}
		if len(*patch.Type) > maxRoomTypeLen {
			return fail("type", "room type cannot exceed 50 characters")
		}
	}
	return nil
}

// ServicePatch checks the fields present in a sparse service update.
func ServicePatch(patch model.AdditionalServicePatch) error {
	if patch.Description != nil {
		if *patch.Description == "" {
			return fail("description", "description is required")
		}
		if len(*patch.Description) > maxDescriptionLen {
			return fail("description", "description cannot exceed 255 characters")
		}
	}
	if patch.Cost != nil && *patch.Cost < 0 {
		return fail("cost", "cost cannot be negative")
	}
	return nil
}

// ServiceFields checks an additional service's description and cost.
func ServiceFields(description string, cost float64) error {
	if description == "" {
		return fail("description", "description is required")
	}
	if cost < 0 {
		return fail("cost", "cost cannot be negative")
	}
	if len(description) > maxDescriptionLen {
		return fail("description", "description cannot exceed 255 characters")
	}
	return nil
}
