package domain

import (
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

var ErrNegativeAmount = errors.New("loan amount must not be negative")

// LoanProduct describes what is being borrowed. It is immutable once created.
type LoanProduct struct {
	id           int
	name         string
	interestRate decimal.Decimal
}

func NewLoanProduct(id int, name string, interestRate decimal.Decimal) *LoanProduct {
	return &LoanProduct{id: id, name: name, interestRate: interestRate}
}

func (p *LoanProduct) ID() int                       { return p.id }
func (p *LoanProduct) Name() string                  { return p.name }
func (p *LoanProduct) InterestRate() decimal.Decimal { return p.interestRate }

// LoanAmount is a non-negative amount in a given currency.
type LoanAmount struct {
	currencyCode string
	amount       decimal.Decimal
}

func NewLoanAmount(currencyCode string, amount decimal.Decimal) (*LoanAmount, error) {
	if amount.IsNegative() {
		return nil, errors.Wrapf(ErrNegativeAmount, "got %s %s", amount, currencyCode)
	}
	return &LoanAmount{currencyCode: currencyCode, amount: amount}, nil
}

func (a *LoanAmount) CurrencyCode() string    { return a.currencyCode }
func (a *LoanAmount) Amount() decimal.Decimal { return a.amount }

// LoanApplication holds the applicant facts, fixed at construction, and the
// decision outcome. The outcome only changes through SetOutcome.
type LoanApplication struct {
	id               int
	product          *LoanProduct
	amount           *LoanAmount
	applicantName    string
	applicantAge     int
	applicantAddress string
	applicantSalary  decimal.Decimal

	outcome Outcome
}

func NewLoanApplication(
	id int,
	product *LoanProduct,
	amount *LoanAmount,
	name string,
	age int,
	address string,
	salary decimal.Decimal,
) *LoanApplication {
	return &LoanApplication{
		id:               id,
		product:          product,
		amount:           amount,
		applicantName:    name,
		applicantAge:     age,
		applicantAddress: address,
		applicantSalary:  salary,
		outcome:          OutcomeUndecided,
	}
}

func (a *LoanApplication) ID() int                          { return a.id }
func (a *LoanApplication) Product() *LoanProduct            { return a.product }
func (a *LoanApplication) Amount() *LoanAmount              { return a.amount }
func (a *LoanApplication) ApplicantName() string            { return a.applicantName }
func (a *LoanApplication) ApplicantAge() int                { return a.applicantAge }
func (a *LoanApplication) ApplicantAddress() string         { return a.applicantAddress }
func (a *LoanApplication) ApplicantSalary() decimal.Decimal { return a.applicantSalary }

func (a *LoanApplication) Outcome() Outcome { return a.outcome }

// IsAccepted reports whether the last processing pass accepted the application.
func (a *LoanApplication) IsAccepted() bool { return a.outcome == OutcomeAccepted }

// SetOutcome records the decision of a processing pass.
func (a *LoanApplication) SetOutcome(outcome Outcome) { a.outcome = outcome }
