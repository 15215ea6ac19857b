package entities

type DeclineReason string

const (
	DeclineFullCapacity    DeclineReason = "FULL_CAPACITY"
	DeclineTimeConflict    DeclineReason = "TIME_CONFLICT"
	DeclineRouteMismatch   DeclineReason = "ROUTE_MISMATCH"
	DeclineDistanceTooFar  DeclineReason = "DISTANCE_TOO_FAR"
	DeclineItemNotAccepted DeclineReason = "ITEM_NOT_ACCEPTED"
	DeclineOther           DeclineReason = "OTHER"
)

var declineDescriptions = map[DeclineReason]string{
	DeclineFullCapacity:    "Vehicle is at full capacity",
	DeclineTimeConflict:    "Schedule conflict",
	DeclineRouteMismatch:   "Route does not match",
	DeclineDistanceTooFar:  "Distance is too far",
	DeclineItemNotAccepted: "Item type not accepted",
	DeclineOther:           "Other reason",
}

func (r DeclineReason) String() string {
	return string(r)
}

func (r DeclineReason) Valid() bool {
	_, ok := declineDescriptions[r]
	return ok
}

func (r DeclineReason) Description() string {
	return declineDescriptions[r]
}
