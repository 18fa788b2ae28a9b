package main

import (
	"fmt"
	"os"

	"tasker/internal/config"
	"tasker/internal/storage"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// StorageFactory creates storage instances based on environment
type StorageFactory struct {
	env Environment
	cfg *config.Config
}

// NewStorageFactory creates a new storage factory for the given environment
func NewStorageFactory(env Environment, cfg *config.Config) *StorageFactory {
	return &StorageFactory{env: env, cfg: cfg}
}

// CreateStorage creates a storage instance based on the current environment
func (sf *StorageFactory) CreateStorage() (storage.Store, error) {
	switch sf.env {
	case Development:
		return sf.createDevelopmentStorage()
	case Testing:
		return sf.createTestingStorage()
	case Production:
		return sf.createProductionStorage()
	default:
		return sf.createProductionStorage()
	}
}

// createDevelopmentStorage uses a database file in the working directory
func (sf *StorageFactory) createDevelopmentStorage() (storage.Store, error) {
	store, err := storage.New("tasker.db")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize development storage: %w", err)
	}
	return store, nil
}

// createTestingStorage uses an in-memory database
func (sf *StorageFactory) createTestingStorage() (storage.Store, error) {
	store, err := storage.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize testing storage: %w", err)
	}
	return store, nil
}

// createProductionStorage uses the configured storage directory
func (sf *StorageFactory) createProductionStorage() (storage.Store, error) {
	if err := os.MkdirAll(sf.cfg.Storage.Dir, os.FileMode(sf.cfg.Storage.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	store, err := storage.New(sf.cfg.GetStoragePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize production storage: %w", err)
	}
	return store, nil
}

// getEnvironment determines the current environment
func getEnvironment() Environment {
	switch os.Getenv("TK_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	case "production":
		return Production
	default:
		// Default to production for safety
		return Production
	}
}
