package service

import "strings"

// RuleIdentityService answers identity checks from local rules only: a name
// and an address must be present and the age must be plausible for an adult.
type RuleIdentityService struct{}

func (RuleIdentityService) CallService(applicantName string, applicantAge int, applicantAddress string) (bool, error) {
	if strings.TrimSpace(applicantName) == "" || strings.TrimSpace(applicantAddress) == "" {
		return false, nil
	}
	if applicantAge < MinApplicantAge || applicantAge > MaxApplicantAge {
		return false, nil
	}
	return true, nil
}
