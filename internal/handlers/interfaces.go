package handlers

import (
	"context"

	"github.com/avelikanov/dui-admin/internal/models"
	"github.com/avelikanov/dui-admin/internal/printclient"
	"github.com/avelikanov/dui-admin/internal/services"
	"github.com/avelikanov/dui-admin/pkg/dto"
	"github.com/google/uuid"
)

// CollectionServiceInterface defines the methods used by handlers from CollectionService
type CollectionServiceInterface interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]dto.CollectionShortResponse, error)
	GetCurrent(ctx context.Context, collectionID uuid.UUID) (*dto.CollectionResponse, error)
	GetByVersion(ctx context.Context, versionID uuid.UUID) (*dto.CollectionResponse, error)
	History(ctx context.Context, collectionID uuid.UUID) ([]dto.CollectionHistoryResponse, error)
	Export(ctx context.Context, collectionID uuid.UUID) (*services.ExportFile, error)
	Create(ctx context.Context, ownerID uuid.UUID, req dto.SaveCollectionRequest) (*dto.CollectionResponse, error)
	Edit(ctx context.Context, collectionID uuid.UUID, req dto.SaveCollectionRequest) (*dto.CollectionResponse, error)
	Delete(ctx context.Context, collectionID uuid.UUID) error
}

// PageServiceInterface defines the methods used by handlers from PageService
type PageServiceInterface interface {
	GetByName(ctx context.Context, name string) (*models.Page, error)
	GetByID(ctx context.Context, pageID uuid.UUID) (*models.Page, error)
}

// TemplateServiceInterface defines the methods used by handlers from TemplateService
type TemplateServiceInterface interface {
	List(ctx context.Context, templateType string) ([]dto.TemplateListEntry, error)
	GetPage(ctx context.Context, templateID uuid.UUID) ([]byte, error)
	GetImage(ctx context.Context, templateID uuid.UUID) (string, []byte, error)
}

// PrintClientInterface defines the methods used by handlers from the
// print-service client
type PrintClientInterface interface {
	FindTemplates(ctx context.Context) (*printclient.FindTemplatesResponse, error)
	DownloadTemplate(ctx context.Context, templateID uuid.UUID) ([]byte, error)
	CreateTemplate(ctx context.Context, req printclient.CreateTemplateRequest, filePath string) error
	UpdateTemplate(ctx context.Context, req printclient.UpdateTemplateRequest, filePath string) error
	DeleteTemplate(ctx context.Context, templateID uuid.UUID) error
}
