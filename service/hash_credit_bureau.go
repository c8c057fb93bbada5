package service

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
)

var ErrUnknownApplicant = errors.New("credit bureau: unknown applicant")

// HashCreditBureau is an offline bureau that derives a stable score in
// [0, MaxBureauScore] from the applicant's name and address.
type HashCreditBureau struct{}

func (HashCreditBureau) FetchScore(applicantName string, applicantAddress string) (int, error) {
	if strings.TrimSpace(applicantName) == "" {
		return 0, ErrUnknownApplicant
	}
	sum := xxhash.Sum64String(applicantKey(applicantName, applicantAddress))
	return int(sum % (MaxBureauScore + 1)), nil
}

func applicantKey(applicantName string, applicantAddress string) string {
	return strings.ToLower(strings.TrimSpace(applicantName)) + "|" +
		strings.ToLower(strings.TrimSpace(applicantAddress))
}
