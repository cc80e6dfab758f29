package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/floobyte/site-api/internal/entity"
)

// Intake use cases cover the three public submission forms. They coerce
// loosely-typed payloads, reject missing required fields before touching
// persistence, and store empty optional fields as NULL.

type CreateLeadInput struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Company  string          `json:"company"`
	Phone    string          `json:"phone"`
	Services json.RawMessage `json:"services"`
	Budget   string          `json:"budget"`
	Details  string          `json:"details"`
	Source   string          `json:"source"`
	Status   string          `json:"status"`
}

type CreateLeadUseCase struct {
	Repo entity.LeadRepository
}

func NewCreateLeadUseCase(repo entity.LeadRepository) *CreateLeadUseCase {
	return &CreateLeadUseCase{Repo: repo}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	services, err := normalizeServices(input.Services)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: "Services must be a list or a string"}
	}

	lead := &entity.Lead{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(input.Email),
		Company:  optional(input.Company),
		Phone:    optional(input.Phone),
		Services: services,
		Budget:   optional(input.Budget),
		Details:  optional(input.Details),
		Source:   defaultString(input.Source, "Quote"),
		Status:   defaultString(input.Status, "New"),
	}

	if lead.Name == "" || lead.Email == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "Name and email are required"}
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		slog.Error("failed to persist lead", "error", err, "payload", input)
		return nil, &TechnicalError{Code: CodeDatabase, Message: "Failed to create lead"}
	}
	return lead, nil
}

type CreateApplicationInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ResumeURL    string `json:"resumeUrl"`
	CoverLetter  string `json:"coverLetter"`
	PositionID   *int   `json:"positionId"`
	InterestArea string `json:"interestArea"`
	Status       string `json:"status"`
}

type CreateApplicationUseCase struct {
	Repo entity.ApplicationRepository
}

func NewCreateApplicationUseCase(repo entity.ApplicationRepository) *CreateApplicationUseCase {
	return &CreateApplicationUseCase{Repo: repo}
}

func (uc *CreateApplicationUseCase) Execute(ctx context.Context, input CreateApplicationInput) (*entity.Application, error) {
	app := &entity.Application{
		Name:         strings.TrimSpace(input.Name),
		Email:        optional(input.Email),
		Phone:        optional(input.Phone),
		ResumeURL:    optional(input.ResumeURL),
		CoverLetter:  optional(input.CoverLetter),
		PositionID:   input.PositionID,
		InterestArea: optional(input.InterestArea),
		Status:       defaultString(input.Status, "New"),
	}

	if app.Name == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "Name is required"}
	}

	if err := uc.Repo.Create(ctx, app); err != nil {
		slog.Error("failed to persist application", "error", err, "payload", input)
		return nil, &TechnicalError{Code: CodeDatabase, Message: "Failed to submit application"}
	}
	return app, nil
}

type CreateMessageInput struct {
	FromName string `json:"fromName"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

type CreateMessageUseCase struct {
	Repo entity.MessageRepository
}

func NewCreateMessageUseCase(repo entity.MessageRepository) *CreateMessageUseCase {
	return &CreateMessageUseCase{Repo: repo}
}

func (uc *CreateMessageUseCase) Execute(ctx context.Context, input CreateMessageInput) (*entity.Message, error) {
	msg := &entity.Message{
		FromName: strings.TrimSpace(input.FromName),
		Email:    optional(input.Email),
		Subject:  optional(input.Subject),
		Message:  optional(input.Message),
		IsRead:   false,
	}

	if msg.FromName == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "Name is required"}
	}

	if err := uc.Repo.Create(ctx, msg); err != nil {
		slog.Error("failed to persist message", "error", err, "payload", input)
		return nil, &TechnicalError{Code: CodeDatabase, Message: "Failed to create message"}
	}
	return msg, nil
}

// normalizeServices accepts the services field as either a JSON array or a
// pre-serialized string. Arrays are re-encoded so the stored text decodes
// back to the original list element-for-element.
func normalizeServices(raw json.RawMessage) (*string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}

	var list []any
	if err := json.Unmarshal(raw, &list); err == nil {
		encoded, err := json.Marshal(list)
		if err != nil {
			return nil, err
		}
		s := string(encoded)
		return &s, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return nil, nil
		}
		return &s, nil
	}

	return nil, &DomainError{Code: CodeValidation, Message: "Services must be a list or a string"}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
