package service_test

import (
	"testing"

	"lms_backend/internal/config"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/require"
)

func TestNewStorageServiceSelectsLocalProvider(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Type = util.StorageLocal
	cfg.Storage.LocalPath = t.TempDir()

	svc := service.NewStorageService(cfg)
	require.IsType(t, &service.LocalStorageProvider{}, svc.Provider)
}

func TestNewStorageServiceFallsBackToLocalOnMinioError(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Type = util.StorageMinio
	cfg.Storage.MinioEndpoint = "" // invalid endpoint, client construction fails
	cfg.Storage.LocalPath = t.TempDir()

	svc := service.NewStorageService(cfg)
	require.IsType(t, &service.LocalStorageProvider{}, svc.Provider)
}
