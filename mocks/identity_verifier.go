package mocks

import (
	"github.com/stretchr/testify/mock"
)

type IdentityVerifier struct {
	mock.Mock
}

func (m *IdentityVerifier) Initialize() error {
	args := m.Called()
	return args.Error(0)
}

func (m *IdentityVerifier) Validate(applicantName string, applicantAge int, applicantAddress string) (bool, error) {
	args := m.Called(applicantName, applicantAge, applicantAddress)
	return args.Bool(0), args.Error(1)
}

type IdentityService struct {
	mock.Mock
}

func (m *IdentityService) CallService(applicantName string, applicantAge int, applicantAddress string) (bool, error) {
	args := m.Called(applicantName, applicantAge, applicantAddress)
	return args.Bool(0), args.Error(1)
}
