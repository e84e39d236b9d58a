package calc

// Government loan program fee schedules. These track a point-in-time
// regulatory schedule and are compiled in as domain constants.

// VAUsage describes the borrower's prior use of the VA loan benefit.
type VAUsage string

const (
	VAFirstUse      VAUsage = "first"
	VASubsequentUse VAUsage = "subsequent"
	VAExempt        VAUsage = "exempt"
)

// VA funding fee percentage bands by down-payment percentage.
const (
	vaFirstUseUnder5      = 2.15
	vaFirstUse5To10       = 1.50
	vaFirstUse10Plus      = 1.25
	vaSubsequentUnder5    = 3.30
	vaSubsequent5To10     = 1.50
	vaSubsequent10Plus    = 1.25
	vaIRRRLFundingFeePct  = 0.50
	vaDownPaymentBandLow  = 5.0
	vaDownPaymentBandHigh = 10.0
)

// FHA mortgage insurance premiums.
const (
	// FHAUpfrontMIPPercent is financed into the loan at closing.
	FHAUpfrontMIPPercent = 1.75

	// FHAAnnualMIPPercent accrues monthly against the loan amount.
	FHAAnnualMIPPercent = 0.55
)

// USDA guarantee fees.
const (
	// USDAGuaranteeFeePercent is financed into the loan at closing.
	USDAGuaranteeFeePercent = 1.00

	// USDAAnnualFeePercent accrues monthly against the loan amount.
	USDAAnnualFeePercent = 0.35
)

// VAFundingFeePercent looks up the funding fee band for a purchase loan.
// Disabled veterans are exempt from the fee entirely.
func VAFundingFeePercent(usage VAUsage, downPaymentPercent float64) float64 {
	if usage == VAExempt {
		return 0
	}

	subsequent := usage == VASubsequentUse
	switch {
	case downPaymentPercent >= vaDownPaymentBandHigh:
		if subsequent {
			return vaSubsequent10Plus
		}
		return vaFirstUse10Plus
	case downPaymentPercent >= vaDownPaymentBandLow:
		if subsequent {
			return vaSubsequent5To10
		}
		return vaFirstUse5To10
	default:
		if subsequent {
			return vaSubsequentUnder5
		}
		return vaFirstUseUnder5
	}
}

// VAIRRRLFundingFeePercent is the flat funding fee for an interest rate
// reduction refinance loan; exemption still applies.
func VAIRRRLFundingFeePercent(usage VAUsage) float64 {
	if usage == VAExempt {
		return 0
	}
	return vaIRRRLFundingFeePct
}
