package tools

// Input structs for the Axiora tool catalog. The jsonschema tags feed the
// parameter schema shown to the model; the validate tags are enforced locally
// before any network call.

type SearchCompaniesInput struct {
	Query  string `json:"query" validate:"required" jsonschema:"description=Company name (JP or EN) or securities code or EDINET code"`
	Sector string `json:"sector,omitempty" jsonschema:"description=Sector filter (e.g. 電気機器)"`
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=50" jsonschema:"default=10,description=Max results (max 50)"`
}

type GetCompanyInput struct {
	Code string `json:"code" validate:"required" jsonschema:"description=EDINET code (e.g. E02144) or securities code (e.g. 7203)"`
}

type GetFinancialsInput struct {
	Code  string `json:"code" validate:"required" jsonschema:"description=EDINET code or securities code"`
	Years int    `json:"years,omitempty" validate:"omitempty,min=1,max=20" jsonschema:"default=5,description=Number of fiscal years (max 20)"`
}

type GetGrowthInput struct {
	Code  string `json:"code" validate:"required" jsonschema:"description=EDINET code or securities code"`
	Years int    `json:"years,omitempty" validate:"omitempty,min=1,max=20" jsonschema:"default=5,description=Number of years (max 20)"`
}

type GetRankingInput struct {
	Metric string `json:"metric,omitempty" jsonschema:"default=revenue,description=Metric to rank by: revenue / net_income / operating_income / total_assets / roe / roa / operating_margin / net_margin / equity_ratio / eps / bps"`
	Sector string `json:"sector,omitempty" jsonschema:"description=Optional sector filter"`
	Order  string `json:"order,omitempty" validate:"omitempty,oneof=asc desc" jsonschema:"default=desc,description=desc for top and asc for bottom"`
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100" jsonschema:"default=20,description=Number of results (max 100)"`
}

type GetSectorOverviewInput struct {
	Sector string `json:"sector,omitempty" jsonschema:"description=Sector name for stats. Omit to list all sectors with company counts."`
}

type CompareCompaniesInput struct {
	Codes []string `json:"codes" validate:"required,min=2,max=5,dive,required" jsonschema:"description=List of 2-5 EDINET or securities codes"`
	Years int      `json:"years,omitempty" validate:"omitempty,min=1,max=10" jsonschema:"default=3,description=Number of years (max 10)"`
}

type ScreenCompaniesInput struct {
	Sector       string   `json:"sector,omitempty" jsonschema:"description=Sector filter"`
	MinRevenue   *int64   `json:"min_revenue,omitempty" jsonschema:"description=Minimum revenue in JPY"`
	MinNetIncome *int64   `json:"min_net_income,omitempty" jsonschema:"description=Minimum net income in JPY"`
	MinROE       *float64 `json:"min_roe,omitempty" jsonschema:"description=Minimum ROE % (e.g. 10.0)"`
	MaxPERatio   *float64 `json:"max_pe_ratio,omitempty" jsonschema:"description=Maximum PE ratio"`
	Limit        int      `json:"limit,omitempty" validate:"omitempty,min=1,max=100" jsonschema:"default=20,description=Max results (max 100)"`
}

type GetHealthScoreInput struct {
	Code string `json:"code" validate:"required" jsonschema:"description=EDINET code or securities code"`
}

type GetHealthRankingInput struct {
	Sector string `json:"sector,omitempty" jsonschema:"description=Optional sector filter"`
	Order  string `json:"order,omitempty" validate:"omitempty,oneof=asc desc" jsonschema:"default=desc,description=desc for healthiest and asc for weakest"`
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100" jsonschema:"default=20,description=Max results (max 100)"`
}

type GetPeersInput struct {
	Code  string `json:"code" validate:"required" jsonschema:"description=EDINET code or securities code"`
	Limit int    `json:"limit,omitempty" validate:"omitempty,min=1,max=50" jsonschema:"default=10,description=Max results (max 50)"`
}

type GetTimeseriesInput struct {
	Codes  []string `json:"codes" validate:"required,min=1,max=5,dive,required" jsonschema:"description=List of 1-5 EDINET or securities codes"`
	Metric string   `json:"metric,omitempty" jsonschema:"default=revenue,description=Metric: revenue / net_income / operating_income / total_assets / total_equity / eps / bps / dividends_per_share / operating_cf / investing_cf / financing_cf / roe / pe_ratio / num_employees"`
	Years  int      `json:"years,omitempty" validate:"omitempty,min=1,max=20" jsonschema:"default=10,description=Number of years (max 20)"`
}

type ListFilingsInput struct {
	CompanyCode string `json:"company_code,omitempty" jsonschema:"description=Filter by company code"`
	DocType     string `json:"doc_type,omitempty" jsonschema:"description=Document type: 120=annual / 130=semi-annual / 140=quarterly"`
	Limit       int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100" jsonschema:"default=20,description=Max results (max 100)"`
}

type GetTranslationsInput struct {
	DocID   string `json:"doc_id" validate:"required" jsonschema:"description=EDINET document ID (e.g. S100ABCD)"`
	Section string `json:"section,omitempty" jsonschema:"description=Section filter: mda / risk_factors / business_overview / governance / financial_notes / accounting_policy"`
}

type SearchTranslationsInput struct {
	Query   string `json:"query" validate:"required" jsonschema:"description=Search terms (e.g. semiconductor or risk factors)"`
	Section string `json:"section,omitempty" jsonschema:"description=Section filter"`
	Limit   int    `json:"limit,omitempty" validate:"omitempty,min=1,max=50" jsonschema:"default=10,description=Max results (max 50)"`
}

type GetFilingCalendarInput struct {
	Month string `json:"month" validate:"required" jsonschema:"description=Month in YYYY-MM format (e.g. 2025-06)"`
}

type SearchCompaniesBatchInput struct {
	Queries []string `json:"queries" validate:"required,min=1,max=10,dive,required" jsonschema:"description=List of up to 10 company identifiers (codes or name fragments)"`
}

type GetCoverageInput struct{}
