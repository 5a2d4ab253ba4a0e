package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// OutcomeRecord is one year of cost, aid, completion, earnings, and
// repayment figures for an institution. Every leaf is optional: the import
// pipelines changed shape across batches, and a missing figure is "no
// data", never an error.
type OutcomeRecord struct {
	ID         primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	SchoolID   int                `json:"school_id" bson:"school_id"`
	Year       int                `json:"year" bson:"year"`
	Cost       *CostBlock         `json:"cost,omitempty" bson:"cost,omitempty"`
	Earnings   *EarningsBlock     `json:"earnings,omitempty" bson:"earnings,omitempty"`
	Completion *Completion        `json:"completion,omitempty" bson:"completion,omitempty"`
	Aid        *AidBlock          `json:"aid,omitempty" bson:"aid,omitempty"`
	Repayment  *RepaymentBlock    `json:"repayment,omitempty" bson:"repayment,omitempty"`
}

// CostBlock carries tuition by residency and net price by pricing tier.
// Net price moved between the overall/public/private keys across import
// batches; consumers resolve it through the field-path table rather than
// reading one key directly.
type CostBlock struct {
	Tuition     *Tuition  `json:"tuition,omitempty" bson:"tuition,omitempty"`
	AvgNetPrice *NetPrice `json:"avg_net_price,omitempty" bson:"avg_net_price,omitempty"`
}

// Tuition is sticker price by residency.
type Tuition struct {
	InState    *float64 `json:"in_state,omitempty" bson:"in_state,omitempty"`
	OutOfState *float64 `json:"out_of_state,omitempty" bson:"out_of_state,omitempty"`
}

// NetPrice is average price after aid, split by sector in some batches.
type NetPrice struct {
	Overall *float64 `json:"overall,omitempty" bson:"overall,omitempty"`
	Public  *float64 `json:"public,omitempty" bson:"public,omitempty"`
	Private *float64 `json:"private,omitempty" bson:"private,omitempty"`
}

// EarningsBlock carries median earnings by years-after-entry horizon.
type EarningsBlock struct {
	SixYearsAfterEntry *EarningsPoint `json:"6_yrs_after_entry,omitempty" bson:"6_yrs_after_entry,omitempty"`
	TenYearsAfterEntry *EarningsPoint `json:"10_yrs_after_entry,omitempty" bson:"10_yrs_after_entry,omitempty"`
}

// EarningsPoint is one earnings summary at a horizon.
type EarningsPoint struct {
	Median *float64 `json:"median,omitempty" bson:"median,omitempty"`
}

// Completion carries cohort completion rates by window and subgroup.
type Completion struct {
	Rate4yr150nt *float64 `json:"completion_rate_4yr_150nt,omitempty" bson:"completion_rate_4yr_150nt,omitempty"`
	Rate4yr100nt *float64 `json:"completion_rate_4yr_100nt,omitempty" bson:"completion_rate_4yr_100nt,omitempty"`
	Rate4yr200nt *float64 `json:"completion_rate_4yr_200nt,omitempty" bson:"completion_rate_4yr_200nt,omitempty"`
	RateOverall  *float64 `json:"completion_rate_overall,omitempty" bson:"completion_rate_overall,omitempty"`
	Rate150White *float64 `json:"completion_rate_4yr_150_white,omitempty" bson:"completion_rate_4yr_150_white,omitempty"`
	Rate150Black *float64 `json:"completion_rate_4yr_150_black,omitempty" bson:"completion_rate_4yr_150_black,omitempty"`
	Rate150Hisp  *float64 `json:"completion_rate_4yr_150_hispanic,omitempty" bson:"completion_rate_4yr_150_hispanic,omitempty"`
	Rate150Asian *float64 `json:"completion_rate_4yr_150_asian,omitempty" bson:"completion_rate_4yr_150_asian,omitempty"`
}

// AidBlock carries grant/loan participation and debt figures.
type AidBlock struct {
	PellGrantRate   *float64    `json:"pell_grant_rate,omitempty" bson:"pell_grant_rate,omitempty"`
	FederalLoanRate *float64    `json:"federal_loan_rate,omitempty" bson:"federal_loan_rate,omitempty"`
	MedianDebt      *MedianDebt `json:"median_debt,omitempty" bson:"median_debt,omitempty"`
}

// MedianDebt nests the completer-cohort debt figure.
type MedianDebt struct {
	Completers *DebtPoint `json:"completers,omitempty" bson:"completers,omitempty"`
}

// DebtPoint is one median-debt summary.
type DebtPoint struct {
	Overall *float64 `json:"overall,omitempty" bson:"overall,omitempty"`
}

// RepaymentBlock carries the loan default rate.
type RepaymentBlock struct {
	ThreeYearDefaultRate *float64 `json:"3_yr_default_rate,omitempty" bson:"3_yr_default_rate,omitempty"`
}
