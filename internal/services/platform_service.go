package services

import (
	"context"

	"menulink/internal/models/db_models"
	"menulink/internal/models/request_models"
	"menulink/internal/repositories"
	"menulink/pkg/utils"
)

type PlatformServiceInterface interface {
	GetConfig(ctx context.Context) (*db_models.PlatformConfig, error)
	UpdateConfig(ctx context.Context, request request_models.PlatformConfigRequest) error
}

type PlatformService struct {
	platformRepo repositories.IPlatformRepository
}

func NewPlatformService(platformRepo repositories.IPlatformRepository) PlatformServiceInterface {
	return &PlatformService{
		platformRepo: platformRepo,
	}
}

// GetConfig returns the stored configuration, or the default whatsapp-only
// shape when the platform has never been configured.
func (p *PlatformService) GetConfig(ctx context.Context) (*db_models.PlatformConfig, error) {

	config, err := p.platformRepo.GetConfig(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if config == nil {
		return &db_models.PlatformConfig{
			PaymentType: db_models.PaymentWhatsApp,
		}, nil
	}

	return config, nil
}

func (p *PlatformService) UpdateConfig(ctx context.Context, request request_models.PlatformConfigRequest) error {

	config := &db_models.PlatformConfig{
		PaymentType:       db_models.PaymentType(request.PaymentType),
		WhatsApp:          request.WhatsApp,
		AdminEmail:        request.AdminEmail,
		RazorpayKeyID:     request.RazorpayKeyID,
		RazorpayKeySecret: request.RazorpayKeySecret,
	}

	if err := p.platformRepo.UpsertConfig(ctx, config); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
