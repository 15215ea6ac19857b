package user

import (
	"fmt"

	"deliveryhub/internal/entities"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/structpb"
)

// toDomain reads the directory's user record. Unknown keys are ignored.
func toDomain(resp *structpb.Struct) (*entities.UserInfo, error) {
	fields := resp.GetFields()

	id, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return nil, fmt.Errorf("user id: %w", err)
	}

	return &entities.UserInfo{
		ID:       id,
		FullName: fields["full_name"].GetStringValue(),
		Email:    fields["email"].GetStringValue(),
		Role:     entities.Role(fields["role"].GetStringValue()),
		Verified: fields["verified"].GetBoolValue(),
	}, nil
}
