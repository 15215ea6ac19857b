package lifecycle

import (
	"strings"
	"time"
	"unicode/utf8"

	"deliveryhub/internal/entities"

	"github.com/google/uuid"
)

const (
	maxCityLength        = 100
	maxItemTypeLength    = 100
	maxDescriptionLength = 2000
	maxMessageLength     = 1000
)

// normalizeCreate trims the text fields and cuts the pickup date down to a
// calendar date.
func normalizeCreate(in entities.DeliveryRequestCreate) entities.DeliveryRequestCreate {
	in.PickupCity = strings.TrimSpace(in.PickupCity)
	in.DropoffCity = strings.TrimSpace(in.DropoffCity)
	in.ItemType = strings.TrimSpace(in.ItemType)
	in.Description = strings.TrimSpace(in.Description)
	if in.PickupDate != nil {
		d := calendarDate(*in.PickupDate)
		in.PickupDate = &d
	}
	return in
}

func validateCreate(customerID uuid.UUID, in entities.DeliveryRequestCreate, now time.Time) error {
	switch {
	case in.PickupCity == "":
		return ErrMissingPickupCity
	case in.DropoffCity == "":
		return ErrMissingDropoffCity
	case in.ItemType == "":
		return ErrMissingItemType
	case tooLong(in.PickupCity, maxCityLength),
		tooLong(in.DropoffCity, maxCityLength),
		tooLong(in.ItemType, maxItemTypeLength),
		tooLong(in.Description, maxDescriptionLength):
		return ErrFieldTooLong
	case !(in.WeightKg > 0):
		return ErrInvalidWeight
	}

	if in.PickupDate != nil && !in.PickupDate.After(calendarDate(now)) {
		return ErrPickupDateNotInFuture
	}

	if in.TargetTransporterID != nil && *in.TargetTransporterID == customerID {
		return ErrSelfTarget
	}

	return nil
}

func validateDecline(reason entities.DeclineReason, message string) error {
	if !reason.Valid() {
		return ErrUnknownDeclineReason
	}
	if tooLong(message, maxMessageLength) {
		return ErrFieldTooLong
	}
	return nil
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tooLong(s string, limit int) bool {
	return utf8.RuneCountInString(s) > limit
}
