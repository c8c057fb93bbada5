package mocks

import "github.com/stretchr/testify/mock"

type CacheRepository struct {
	mock.Mock
}

func (m *CacheRepository) Get(key string) (string, bool) {
	args := m.Called(key)
	return args.String(0), args.Bool(1)
}

func (m *CacheRepository) Set(key string, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}
