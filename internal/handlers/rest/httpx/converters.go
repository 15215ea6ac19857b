package httpx

import (
	"deliveryhub/internal/entities"
	"deliveryhub/internal/generated/dto"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

func Delivery(v *entities.DeliveryRequestView) dto.Delivery {
	out := dto.Delivery{
		ID:               v.ID.String(),
		PickupCity:       v.PickupCity,
		DropoffCity:      v.DropoffCity,
		ItemType:         v.ItemType,
		Description:      v.Description,
		WeightKg:         v.WeightKg,
		CustomerID:       v.CustomerID.String(),
		Customer:         user(v.Customer),
		TransporterID:    optionalID(v.TransporterID),
		Transporter:      user(v.Transporter),
		Status:           dto.DeliveryStatus(v.Status),
		CreatedAt:        v.CreatedAt,
		RequestedAt:      v.RequestedAt,
		AcceptedAt:       v.AcceptedAt,
		AssignedAt:       v.AssignedAt,
		DeliveredAt:      v.DeliveredAt,
		DeclinedAt:       v.DeclinedAt,
		DeclinedBy:       optionalID(v.DeclinedBy),
		DeclineDismissed: v.DeclineDismissed,
		DeclineMessage:   optionalString(v.DeclineMessage),
		CancelReason:     optionalString(v.CancelReason),
	}

	if v.PickupDate != nil {
		date := v.PickupDate.Format(dateLayout)
		out.PickupDate = &date
	}
	if v.DeclineReason != nil {
		reason := dto.DeclineReason(*v.DeclineReason)
		description := v.DeclineReason.Description()
		out.DeclineReason = &reason
		out.DeclineReasonDescription = &description
	}

	return out
}

func Deliveries(views []entities.DeliveryRequestView) dto.DeliveryList {
	out := make(dto.DeliveryList, 0, len(views))
	for i := range views {
		out = append(out, Delivery(&views[i]))
	}
	return out
}

func Application(v *entities.ApplicationView) dto.Application {
	return dto.Application{
		ID:                  v.ID.String(),
		DeliveryRequestID:   v.RequestID.String(),
		TransporterID:       v.TransporterID.String(),
		Transporter:         user(v.Transporter),
		QuotedPrice:         v.QuotedPrice,
		Status:              dto.ApplicationStatus(v.Status),
		AppliedAt:           v.AppliedAt,
		AverageRating:       v.Stats.AverageRating,
		TotalRatings:        v.Stats.TotalRatings,
		CompletedDeliveries: v.Stats.CompletedDeliveries,
	}
}

func Applications(views []entities.ApplicationView) dto.ApplicationList {
	out := make(dto.ApplicationList, 0, len(views))
	for i := range views {
		out = append(out, Application(&views[i]))
	}
	return out
}

func user(u *entities.UserInfo) *dto.User {
	if u == nil {
		return nil
	}
	return &dto.User{
		ID:       u.ID.String(),
		FullName: u.FullName,
		Email:    u.Email,
	}
}

func optionalID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func Tariff(p *entities.TransporterPricing) dto.Tariff {
	return dto.Tariff{
		TransporterID:            p.TransporterID.String(),
		WeightThresholdKg:        p.WeightThresholdKg,
		FixedPriceUnderThreshold: p.FixedPriceUnderThreshold,
		RatePerKg:                p.RatePerKg,
	}
}
