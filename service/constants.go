package service

const (
	MinimumSalary   = 65_000 // below this an application is declined without consulting any capability
	AcceptanceScore = 300    // lowest credit score accepted under the inclusive policy

	MinApplicantAge = 18
	MaxApplicantAge = 120

	MaxBureauScore = 850
)
