// file: internals/features/subscriptions/dto/plan_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	billing "minhaescola_backend/internals/features/subscriptions/model"
)

type PlanCreateDTO struct {
	PlanName                 string   `json:"plan_name" validate:"required,max=80"`
	PlanPricePerStudentCents int      `json:"plan_price_per_student_cents" validate:"min=0"`
	PlanMaxStudents          *int     `json:"plan_max_students" validate:"omitempty,min=1"`
	PlanFeatures             []string `json:"plan_features" validate:"dive,max=120"`
}

type PlanResponse struct {
	PlanID                   uuid.UUID `json:"plan_id"`
	PlanName                 string    `json:"plan_name"`
	PlanPricePerStudentCents int       `json:"plan_price_per_student_cents"`
	PlanMaxStudents          *int      `json:"plan_max_students,omitempty"`
	PlanFeatures             []string  `json:"plan_features"`
	PlanCreatedAt            time.Time `json:"plan_created_at"`
}

func ToPlanResponse(m billing.Plan) PlanResponse {
	return PlanResponse{
		PlanID:                   m.PlanID,
		PlanName:                 m.PlanName,
		PlanPricePerStudentCents: m.PlanPricePerStudentCents,
		PlanMaxStudents:          m.PlanMaxStudents,
		PlanFeatures:             m.PlanFeatures,
		PlanCreatedAt:            m.PlanCreatedAt,
	}
}

func ToPlanResponses(list []billing.Plan) []PlanResponse {
	out := make([]PlanResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToPlanResponse(m))
	}
	return out
}

func (in PlanCreateDTO) ToModel() billing.Plan {
	return billing.Plan{
		PlanName:                 in.PlanName,
		PlanPricePerStudentCents: in.PlanPricePerStudentCents,
		PlanMaxStudents:          in.PlanMaxStudents,
		PlanFeatures:             pq.StringArray(in.PlanFeatures),
	}
}
