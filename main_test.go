package main

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pethotel/internal/shared/config"
	"pethotel/internal/shared/logger"
	"pethotel/internal/testhelpers"
)

func testConfig(source config.SourceConfig, address string) *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Pet Hotel Chatbot API", Version: "1.0", Environment: "test"},
		Server: config.ServerConfig{
			Address:         address,
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			ShutdownTimeout: time.Second,
		},
		Source: source,
	}
}

func TestRun_SourceFailureIsReturned(t *testing.T) {
	cfg := testConfig(config.SourceConfig{
		Kind:        config.SourceKindSQL,
		Driver:      "sqlite3",
		DSN:         filepath.Join(t.TempDir(), "missing", "dir", "hotel.db"),
		LoadWorkers: 1,
	}, "127.0.0.1:0")

	err := run(context.Background(), cfg, logger.NewNoOpLogger())
	assert.Error(t, err)
}

func TestRun_ListenFailureIsReturned(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := testConfig(config.SourceConfig{
		Kind: config.SourceKindXLSX,
		Path: testhelpers.WriteFixtureWorkbook(t),
	}, ln.Addr().String())

	err = run(context.Background(), cfg, logger.NewNoOpLogger())
	assert.Error(t, err)
}

func TestRun_StopsCleanlyOnCancel(t *testing.T) {
	cfg := testConfig(config.SourceConfig{
		Kind: config.SourceKindXLSX,
		Path: testhelpers.WriteFixtureWorkbook(t),
	}, "127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, run(ctx, cfg, logger.NewNoOpLogger()))
}
