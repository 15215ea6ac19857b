package delivery_application

import "deliveryhub/internal/entities"

func ToDomain(m *DeliveryApplicationDB) *entities.DeliveryApplication {
	if m == nil {
		return nil
	}
	return &entities.DeliveryApplication{
		ID:            m.ID,
		RequestID:     m.RequestID,
		TransporterID: m.TransporterID,
		QuotedPrice:   m.QuotedPrice,
		Status:        entities.ApplicationStatus(m.Status),
		AppliedAt:     m.AppliedAt.UTC(),
	}
}

func ToDomainList(models []DeliveryApplicationDB) []entities.DeliveryApplication {
	result := make([]entities.DeliveryApplication, 0, len(models))
	for i := range models {
		result = append(result, *ToDomain(&models[i]))
	}
	return result
}
