package mocks

import (
	"context"

	"hideout-tracker/feature/catalog"

	"github.com/stretchr/testify/mock"
)

// Provider is a mock implementation of catalog.Provider
type Provider struct {
	mock.Mock
}

func (m *Provider) Stations(ctx context.Context) ([]catalog.Station, error) {
	args := m.Called(ctx)
	if s, ok := args.Get(0).([]catalog.Station); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Provider) Traders(ctx context.Context) ([]catalog.Trader, error) {
	args := m.Called(ctx)
	if t, ok := args.Get(0).([]catalog.Trader); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Provider) Items(ctx context.Context) ([]catalog.Item, error) {
	args := m.Called(ctx)
	if i, ok := args.Get(0).([]catalog.Item); ok {
		return i, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Provider) Tasks(ctx context.Context) ([]catalog.Task, error) {
	args := m.Called(ctx)
	if t, ok := args.Get(0).([]catalog.Task); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Provider) Maps(ctx context.Context) ([]catalog.Map, error) {
	args := m.Called(ctx)
	if mp, ok := args.Get(0).([]catalog.Map); ok {
		return mp, args.Error(1)
	}
	return nil, args.Error(1)
}
