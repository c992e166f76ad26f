package service

import (
	"context"
	"log"
	"time"

	"brightline/internal/models"
	"brightline/internal/validation"
)

// SLAForm is the raw SLA signing form input. The signatures are base64
// image data URLs drawn on a canvas; they are stored opaquely.
type SLAForm struct {
	EffectiveDate     string
	ClientName        string
	ClientSignature   string
	ProviderSignature string
}

type SLAStatus int

const (
	SLACreated SLAStatus = iota
	SLAInvalid
	SLAStoreFailed
)

type SLAResult struct {
	Status      SLAStatus
	ID          uint
	FieldErrors map[string]string
}

// SLAStore is the slice of the repository this service needs.
type SLAStore interface {
	Create(ctx context.Context, sla *models.SLA) error
	ListRecent(ctx context.Context, limit int) ([]models.SLA, error)
}

type SLAService interface {
	Create(ctx context.Context, form SLAForm) SLAResult
	ListRecent(ctx context.Context) ([]models.SLA, error)
}

type slaService struct {
	store SLAStore
}

func NewSLAService(store SLAStore) SLAService {
	return &slaService{store: store}
}

func (s *slaService) Create(ctx context.Context, form SLAForm) SLAResult {
	sub, fieldErrs := validation.SLA(
		form.EffectiveDate,
		form.ClientName,
		form.ClientSignature,
		form.ProviderSignature,
		time.Now(),
	)
	if fieldErrs != nil {
		return SLAResult{Status: SLAInvalid, FieldErrors: fieldErrs}
	}

	sla := &models.SLA{
		EffectiveDate:     sub.EffectiveDate,
		ClientName:        sub.ClientName,
		ClientSignature:   sub.ClientSignature,
		ProviderSignature: sub.ProviderSignature,
	}
	if err := s.store.Create(ctx, sla); err != nil {
		log.Printf("[sla] insert failed: %v", err)
		return SLAResult{Status: SLAStoreFailed}
	}

	return SLAResult{Status: SLACreated, ID: sla.ID}
}

func (s *slaService) ListRecent(ctx context.Context) ([]models.SLA, error) {
	return s.store.ListRecent(ctx, 50)
}
