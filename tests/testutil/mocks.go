package testutil

import (
	"context"

	"github.com/avelikanov/dui-admin/internal/models"
	"github.com/avelikanov/dui-admin/internal/printclient"
	"github.com/avelikanov/dui-admin/internal/services"
	"github.com/avelikanov/dui-admin/pkg/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCollectionService mocks the CollectionService
type MockCollectionService struct {
	mock.Mock
}

func (m *MockCollectionService) List(ctx context.Context, ownerID uuid.UUID) ([]dto.CollectionShortResponse, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CollectionShortResponse), args.Error(1)
}

func (m *MockCollectionService) GetCurrent(ctx context.Context, collectionID uuid.UUID) (*dto.CollectionResponse, error) {
	args := m.Called(ctx, collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CollectionResponse), args.Error(1)
}

func (m *MockCollectionService) GetByVersion(ctx context.Context, versionID uuid.UUID) (*dto.CollectionResponse, error) {
	args := m.Called(ctx, versionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CollectionResponse), args.Error(1)
}

func (m *MockCollectionService) History(ctx context.Context, collectionID uuid.UUID) ([]dto.CollectionHistoryResponse, error) {
	args := m.Called(ctx, collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CollectionHistoryResponse), args.Error(1)
}

func (m *MockCollectionService) Export(ctx context.Context, collectionID uuid.UUID) (*services.ExportFile, error) {
	args := m.Called(ctx, collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ExportFile), args.Error(1)
}

func (m *MockCollectionService) Create(ctx context.Context, ownerID uuid.UUID, req dto.SaveCollectionRequest) (*dto.CollectionResponse, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CollectionResponse), args.Error(1)
}

func (m *MockCollectionService) Edit(ctx context.Context, collectionID uuid.UUID, req dto.SaveCollectionRequest) (*dto.CollectionResponse, error) {
	args := m.Called(ctx, collectionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CollectionResponse), args.Error(1)
}

func (m *MockCollectionService) Delete(ctx context.Context, collectionID uuid.UUID) error {
	args := m.Called(ctx, collectionID)
	return args.Error(0)
}

func (m *MockCollectionService) Exists(ctx context.Context, collectionID uuid.UUID) error {
	args := m.Called(ctx, collectionID)
	return args.Error(0)
}

// MockPageService mocks the PageService
type MockPageService struct {
	mock.Mock
}

func (m *MockPageService) GetByName(ctx context.Context, name string) (*models.Page, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page), args.Error(1)
}

func (m *MockPageService) GetByID(ctx context.Context, pageID uuid.UUID) (*models.Page, error) {
	args := m.Called(ctx, pageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page), args.Error(1)
}

// MockTemplateService mocks the TemplateService
type MockTemplateService struct {
	mock.Mock
}

func (m *MockTemplateService) List(ctx context.Context, templateType string) ([]dto.TemplateListEntry, error) {
	args := m.Called(ctx, templateType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TemplateListEntry), args.Error(1)
}

func (m *MockTemplateService) GetPage(ctx context.Context, templateID uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockTemplateService) GetImage(ctx context.Context, templateID uuid.UUID) (string, []byte, error) {
	args := m.Called(ctx, templateID)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).([]byte), args.Error(2)
}

// MockPrintClient mocks the print-service client
type MockPrintClient struct {
	mock.Mock
}

func (m *MockPrintClient) FindTemplates(ctx context.Context) (*printclient.FindTemplatesResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*printclient.FindTemplatesResponse), args.Error(1)
}

func (m *MockPrintClient) DownloadTemplate(ctx context.Context, templateID uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockPrintClient) CreateTemplate(ctx context.Context, req printclient.CreateTemplateRequest, filePath string) error {
	args := m.Called(ctx, req, filePath)
	return args.Error(0)
}

func (m *MockPrintClient) UpdateTemplate(ctx context.Context, req printclient.UpdateTemplateRequest, filePath string) error {
	args := m.Called(ctx, req, filePath)
	return args.Error(0)
}

func (m *MockPrintClient) DeleteTemplate(ctx context.Context, templateID uuid.UUID) error {
	args := m.Called(ctx, templateID)
	return args.Error(0)
}
