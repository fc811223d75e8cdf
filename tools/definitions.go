package tools

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/axiora-dev/axiora-go/schema"
)

// Definition is one immutable catalog entry: the name, description, and
// parameter schema advertised to the agent, plus the request the operation
// maps to. Definitions never issue network calls themselves.
type Definition struct {
	name        string
	description string
	method      string
	params      any
	newInput    func() any
	request     func(in any) (path string, query url.Values, err error)
}

// Name returns the unique tool name.
func (d *Definition) Name() string { return d.name }

// Description returns the tool description, to be used in the prompt.
func (d *Definition) Description() string { return d.description }

// Parameters returns the parameters schema of the tool input.
func (d *Definition) Parameters() any { return d.params }

// define builds a catalog entry for input type I. proto carries the
// documented parameter defaults: inputs are unmarshalled over a copy of it,
// so absent fields keep their defaults. A broken input schema is a
// programming error in the catalog and panics at process start.
func define[I any](name, description string, proto I, request func(in *I) (string, url.Values)) *Definition {
	sc, err := schema.New(reflect.TypeOf(proto))
	if err != nil {
		panic(fmt.Sprintf("tools: invalid input schema for %s: %v", name, err))
	}
	return &Definition{
		name:        name,
		description: description,
		method:      http.MethodGet,
		params:      sc.Parameters,
		newInput:    func() any { in := proto; return &in },
		request: func(in any) (string, url.Values, error) {
			typed, ok := in.(*I)
			if !ok {
				return "", nil, errors.Errorf("invalid input type %T for tool %s", in, name)
			}
			path, q := request(typed)
			return path, q, nil
		},
	}
}

var catalog = []*Definition{
	define("axiora_search_companies",
		"Search for Japanese listed companies by name, securities code, or EDINET code. "+
			"Use this to find a company's code before calling other tools. "+
			"For looking up multiple companies at once, use axiora_search_companies_batch instead.",
		SearchCompaniesInput{Limit: 10},
		func(in *SearchCompaniesInput) (string, url.Values) {
			q := url.Values{}
			setStr(q, "query", in.Query)
			setStr(q, "sector", in.Sector)
			setInt(q, "limit", in.Limit)
			return "/companies/search", q
		}),
	define("axiora_get_company",
		"Get detailed info for a single Japanese company including name, sector, listing, "+
			"and fiscal year end. Requires a company code — use axiora_search_companies first "+
			"if you only have a name.",
		GetCompanyInput{},
		func(in *GetCompanyInput) (string, url.Values) {
			return "/companies/" + url.PathEscape(in.Code), nil
		}),
	define("axiora_get_financials",
		"Get financial time series for a Japanese company. Returns revenue, net income, "+
			"total assets, equity, ROE, ROA, and margins per fiscal year. "+
			"Use this for detailed financial data. For growth rates, use axiora_get_growth instead.",
		GetFinancialsInput{Years: 5},
		func(in *GetFinancialsInput) (string, url.Values) {
			q := url.Values{}
			setInt(q, "years", in.Years)
			return "/companies/" + url.PathEscape(in.Code) + "/financials", q
		}),
	define("axiora_get_growth",
		"Get year-over-year growth rates and CAGRs for a Japanese company's financials. "+
			"Use this when the question is about growth trends. "+
			"For raw financial numbers, use axiora_get_financials instead.",
		GetGrowthInput{Years: 5},
		func(in *GetGrowthInput) (string, url.Values) {
			q := url.Values{}
			setInt(q, "years", in.Years)
			return "/companies/" + url.PathEscape(in.Code) + "/growth", q
		}),
	define("axiora_get_ranking",
		"Rank Japanese companies by a financial metric (revenue, ROE, net income, etc.). "+
			"Use this to find top/bottom companies by any metric. "+
			"Optionally filter by sector.",
		GetRankingInput{Metric: "revenue", Order: "desc", Limit: 20},
		func(in *GetRankingInput) (string, url.Values) {
			q := url.Values{}
			setStr(q, "sector", in.Sector)
			setStr(q, "order", in.Order)
			setInt(q, "limit", in.Limit)
			return "/rankings/" + url.PathEscape(in.Metric), q
		}),
	define("axiora_get_sector_overview",
		"List all sectors with company counts, or get aggregate financial stats for a "+
			"specific sector. Use this to understand the Japanese market structure.",
		GetSectorOverviewInput{},
		func(in *GetSectorOverviewInput) (string, url.Values) {
			if in.Sector != "" {
				return "/sectors/" + url.PathEscape(in.Sector), nil
			}
			return "/sectors", nil
		}),
	define("axiora_compare_companies",
		"Compare financials of 2-5 Japanese companies side by side. "+
			"Use this when directly comparing specific companies. "+
			"For finding similar companies, use axiora_get_peers instead.",
		CompareCompaniesInput{Years: 3},
		func(in *CompareCompaniesInput) (string, url.Values) {
			q := url.Values{}
			setList(q, "codes", in.Codes)
			setInt(q, "years", in.Years)
			return "/compare", q
		}),
	define("axiora_screen_companies",
		"Screen Japanese companies by financial criteria (sector, min revenue, min ROE, "+
			"max PE ratio). All filters are combined with AND logic. "+
			"Use this to find companies matching specific financial thresholds.",
		ScreenCompaniesInput{Limit: 20},
		func(in *ScreenCompaniesInput) (string, url.Values) {
			q := url.Values{}
			setStr(q, "sector", in.Sector)
			if in.MinRevenue != nil {
				q.Set("min_revenue", strconv.FormatInt(*in.MinRevenue, 10))
			}
			if in.MinNetIncome != nil {
				q.Set("min_net_income", strconv.FormatInt(*in.MinNetIncome, 10))
			}
			if in.MinROE != nil {
				q.Set("min_roe", strconv.FormatFloat(*in.MinROE, 'f', -1, 64))
			}
			if in.MaxPERatio != nil {
				q.Set("max_pe_ratio", strconv.FormatFloat(*in.MaxPERatio, 'f', -1, 64))
			}
			setInt(q, "limit", in.Limit)
			return "/screen", q
		}),
	define("axiora_get_health_score",
		"Get the financial health score (0-100) for a Japanese company with component "+
			"breakdown (stability, profitability, cash flow) and risk flags. "+
			"Use this to assess a single company's financial health.",
		GetHealthScoreInput{},
		func(in *GetHealthScoreInput) (string, url.Values) {
			return "/companies/" + url.PathEscape(in.Code) + "/health", nil
		}),
	define("axiora_get_health_ranking",
		"Rank Japanese companies by financial health score. "+
			"Use this to find the healthiest or weakest companies, optionally within a sector.",
		GetHealthRankingInput{Order: "desc", Limit: 20},
		func(in *GetHealthRankingInput) (string, url.Values) {
			q := url.Values{}
			setStr(q, "sector", in.Sector)
			setStr(q, "order", in.Order)
			setInt(q, "limit", in.Limit)
			return "/rankings/health", q
		}),
	define("axiora_get_peers",
		"Find peer companies in the same sector with similar revenue. "+
			"Use this to discover competitors or comparable companies. "+
			"For direct side-by-side comparison, use axiora_compare_companies instead.",
		GetPeersInput{Limit: 10},
		func(in *GetPeersInput) (string, url.Values) {
			q := url.Values{}
			setInt(q, "limit", in.Limit)
			return "/companies/" + url.PathEscape(in.Code) + "/peers", q
		}),
	define("axiora_get_timeseries",
		"Get time-series data for a financial metric across 1-5 companies. "+
			"Returns chart-friendly format with fiscal_year and value per company. "+
			"Use this when you need to plot or compare a single metric over time.",
		GetTimeseriesInput{Metric: "revenue", Years: 10},
		func(in *GetTimeseriesInput) (string, url.Values) {
			q := url.Values{}
			setList(q, "codes", in.Codes)
			setStr(q, "metric", in.Metric)
			setInt(q, "years", in.Years)
			return "/timeseries", q
		}),
	define("axiora_list_filings",
		"List filings (annual, semi-annual, quarterly reports) with optional filters. "+
			"Use this to find filing document IDs needed for axiora_get_translations.",
		ListFilingsInput{Limit: 20},
		func(in *ListFilingsInput) (string, url.Values) {
			q := url.Values{}
			setStr(q, "company_code", in.CompanyCode)
			setStr(q, "doc_type", in.DocType)
			setInt(q, "limit", in.Limit)
			return "/filings", q
		}),
	define("axiora_get_translations",
		"Get English translations of a Japanese filing by document ID. "+
			"Sections: mda, risk_factors, business_overview, governance, financial_notes, "+
			"accounting_policy. Use axiora_list_filings first to find the doc_id.",
		GetTranslationsInput{},
		func(in *GetTranslationsInput) (string, url.Values) {
			q := url.Values{}
			setStr(q, "section", in.Section)
			return "/translations/" + url.PathEscape(in.DocID), q
		}),
	define("axiora_search_translations",
		"Full-text search across English translations of Japanese filings. "+
			"Returns matching sections with highlighted snippets. "+
			"Use this to find what companies say about a topic (e.g. 'semiconductor', 'ESG').",
		SearchTranslationsInput{Limit: 10},
		func(in *SearchTranslationsInput) (string, url.Values) {
			q := url.Values{}
			setStr(q, "query", in.Query)
			setStr(q, "section", in.Section)
			setInt(q, "limit", in.Limit)
			return "/translations/search", q
		}),
	define("axiora_get_filing_calendar",
		"Get filing calendar for a month — shows how many filings were submitted per day. "+
			"Use this to understand filing seasonality or find busy filing periods.",
		GetFilingCalendarInput{},
		func(in *GetFilingCalendarInput) (string, url.Values) {
			q := url.Values{}
			setStr(q, "month", in.Month)
			return "/filings/calendar", q
		}),
	define("axiora_search_companies_batch",
		"Look up multiple companies at once (max 10). Accepts a mix of EDINET codes, "+
			"securities codes, and name fragments. "+
			"Use this instead of calling axiora_search_companies multiple times.",
		SearchCompaniesBatchInput{},
		func(in *SearchCompaniesBatchInput) (string, url.Values) {
			q := url.Values{}
			setList(q, "queries", in.Queries)
			return "/companies/search", q
		}),
	define("axiora_get_coverage",
		"Get data coverage statistics — total companies, filings, metric availability, "+
			"and data freshness. Use this to understand what data is available before querying.",
		GetCoverageInput{},
		func(in *GetCoverageInput) (string, url.Values) {
			return "/coverage", nil
		}),
}

var catalogByName = func() map[string]*Definition {
	m := make(map[string]*Definition, len(catalog))
	for _, d := range catalog {
		if _, ok := m[d.name]; ok {
			panic("tools: duplicate tool name " + d.name)
		}
		m[d.name] = d
	}
	return m
}()

// Definitions returns the full catalog in its fixed order.
func Definitions() []*Definition {
	return slices.Clone(catalog)
}

// ByName returns the definition with the given name.
func ByName(name string) (*Definition, bool) {
	d, ok := catalogByName[name]
	return d, ok
}

// Names returns all catalog names in catalog order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, d := range catalog {
		names[i] = d.name
	}
	return names
}

func setStr(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

func setInt(q url.Values, key string, v int) {
	if v != 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

func setList(q url.Values, key string, vs []string) {
	if len(vs) > 0 {
		q.Set(key, strings.Join(vs, ","))
	}
}
