// file: internals/features/printing/dto/print_request_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	printing "minhaescola_backend/internals/features/printing/model"
	"minhaescola_backend/internals/lifecycle"
)

// =========================================================
// REQUESTS
// =========================================================

type PrintRequestCreateDTO struct {
	PrintRequestSchoolID      uuid.UUID  `json:"print_request_school_id" validate:"required"`
	PrintRequestSchoolChainID *uuid.UUID `json:"print_request_school_chain_id"`

	PrintRequestTitle       string  `json:"print_request_title" validate:"required,max=160"`
	PrintRequestDescription *string `json:"print_request_description"`
	PrintRequestFileURL     string  `json:"print_request_file_url" validate:"required,url"`
	PrintRequestCopies      int     `json:"print_request_copies" validate:"required,min=1,max=500"`
	PrintRequestIsColor     bool    `json:"print_request_is_color"`
}

// PrintRequestRejectDTO: feedback is what the teacher sees, so it is required.
type PrintRequestRejectDTO struct {
	Feedback *string `json:"feedback" validate:"required"`
}

type PrintRequestActionDTO struct {
	Feedback *string `json:"feedback"`
}

// PrintRequestResubmitDTO lets the teacher swap the file when sending a
// reviewed request back to the queue.
type PrintRequestResubmitDTO struct {
	PrintRequestFileURL *string `json:"print_request_file_url" validate:"omitempty,url"`
}

// =========================================================
// RESPONSES
// =========================================================

type PrintRequestResponse struct {
	PrintRequestID uuid.UUID `json:"print_request_id"`

	PrintRequestSchoolID      uuid.UUID  `json:"print_request_school_id"`
	PrintRequestSchoolChainID *uuid.UUID `json:"print_request_school_chain_id,omitempty"`

	PrintRequestRequesterUserID uuid.UUID `json:"print_request_requester_user_id"`

	PrintRequestTitle       string  `json:"print_request_title"`
	PrintRequestDescription *string `json:"print_request_description,omitempty"`
	PrintRequestFileURL     string  `json:"print_request_file_url"`
	PrintRequestCopies      int     `json:"print_request_copies"`
	PrintRequestIsColor     bool    `json:"print_request_is_color"`

	PrintRequestStatus      lifecycle.Status `json:"print_request_status"`
	PrintRequestStatusLabel string           `json:"print_request_status_label"`
	PrintRequestFeedback    *string          `json:"print_request_feedback,omitempty"`

	PrintRequestRequestedAt time.Time  `json:"print_request_requested_at"`
	PrintRequestApprovedAt  *time.Time `json:"print_request_approved_at,omitempty"`
	PrintRequestRejectedAt  *time.Time `json:"print_request_rejected_at,omitempty"`
	PrintRequestPrintedAt   *time.Time `json:"print_request_printed_at,omitempty"`

	PrintRequestCreatedAt time.Time `json:"print_request_created_at"`
	PrintRequestUpdatedAt time.Time `json:"print_request_updated_at"`
}

// =========================================================
// MAPPERS
// =========================================================

func ToPrintRequestResponse(m printing.PrintRequest) PrintRequestResponse {
	return PrintRequestResponse{
		PrintRequestID:              m.PrintRequestID,
		PrintRequestSchoolID:        m.PrintRequestSchoolID,
		PrintRequestSchoolChainID:   m.PrintRequestSchoolChainID,
		PrintRequestRequesterUserID: m.PrintRequestRequesterUserID,
		PrintRequestTitle:           m.PrintRequestTitle,
		PrintRequestDescription:     m.PrintRequestDescription,
		PrintRequestFileURL:         m.PrintRequestFileURL,
		PrintRequestCopies:          m.PrintRequestCopies,
		PrintRequestIsColor:         m.PrintRequestIsColor,
		PrintRequestStatus:          m.PrintRequestStatus,
		PrintRequestStatusLabel:     lifecycle.Label(lifecycle.EntityPrintRequest, m.PrintRequestStatus),
		PrintRequestFeedback:        m.PrintRequestFeedback,
		PrintRequestRequestedAt:     m.PrintRequestRequestedAt,
		PrintRequestApprovedAt:      m.PrintRequestApprovedAt,
		PrintRequestRejectedAt:      m.PrintRequestRejectedAt,
		PrintRequestPrintedAt:       m.PrintRequestPrintedAt,
		PrintRequestCreatedAt:       m.PrintRequestCreatedAt,
		PrintRequestUpdatedAt:       m.PrintRequestUpdatedAt,
	}
}

func ToPrintRequestResponses(list []printing.PrintRequest) []PrintRequestResponse {
	out := make([]PrintRequestResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToPrintRequestResponse(m))
	}
	return out
}
