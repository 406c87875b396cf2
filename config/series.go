package config

import (
	m "stressindicator/internal/model"
)

// Static stress-indicator catalog. Identifiers are FRED series codes and
// Yahoo Finance tickers; the tables are fixed at build time and drive the
// whole fetch run.

var FredSeries = []m.SeriesSpec{
	// credit
	{ID: "BAMLH0A0HYM2", Name: "US High Yield OAS", Description: "ICE BofA US High Yield Index Option-Adjusted Spread", Frequency: m.Daily, Unit: "percent", Category: m.Credit},
	{ID: "BAMLC0A0CM", Name: "US Corporate OAS", Description: "ICE BofA US Corporate Index Option-Adjusted Spread", Frequency: m.Daily, Unit: "percent", Category: m.Credit},
	{ID: "BAMLHE00EHYIOAS", Name: "Euro High Yield OAS", Description: "ICE BofA Euro High Yield Index Option-Adjusted Spread", Frequency: m.Daily, Unit: "percent", Category: m.Credit},
	{ID: "NFCI", Name: "Chicago Fed NFCI", Description: "Chicago Fed National Financial Conditions Index", Frequency: m.Weekly, Unit: "index", Category: m.Credit},
	{ID: "STLFSI4", Name: "St. Louis Fed Stress Index", Description: "St. Louis Fed Financial Stress Index", Frequency: m.Weekly, Unit: "index", Category: m.Credit},
	// sovereign
	{ID: "DGS10", Name: "US 10Y Treasury", Description: "Market yield on US Treasury securities at 10-year constant maturity", Frequency: m.Daily, Unit: "percent", Category: m.Sovereign},
	{ID: "DGS2", Name: "US 2Y Treasury", Description: "Market yield on US Treasury securities at 2-year constant maturity", Frequency: m.Daily, Unit: "percent", Category: m.Sovereign},
	{ID: "IRLTLT01ITM156N", Name: "Italy 10Y Yield", Description: "Long-term government bond yield, Italy", Frequency: m.Monthly, Unit: "percent", Category: m.Sovereign},
	{ID: "IRLTLT01DEM156N", Name: "Germany 10Y Yield", Description: "Long-term government bond yield, Germany", Frequency: m.Monthly, Unit: "percent", Category: m.Sovereign},
	{ID: "IRLTLT01FRM156N", Name: "France 10Y Yield", Description: "Long-term government bond yield, France", Frequency: m.Monthly, Unit: "percent", Category: m.Sovereign},
	{ID: "IRLTLT01ESM156N", Name: "Spain 10Y Yield", Description: "Long-term government bond yield, Spain", Frequency: m.Monthly, Unit: "percent", Category: m.Sovereign},
	{ID: "IRLTLT01GBM156N", Name: "UK 10Y Yield", Description: "Long-term government bond yield, United Kingdom", Frequency: m.Monthly, Unit: "percent", Category: m.Sovereign},
	// inflation
	{ID: "CPIAUCSL", Name: "US CPI", Description: "Consumer Price Index for All Urban Consumers, all items", Frequency: m.Monthly, Unit: "index", Category: m.Inflation},
	{ID: "T10YIE", Name: "US 10Y Breakeven", Description: "10-year breakeven inflation rate", Frequency: m.Daily, Unit: "percent", Category: m.Inflation},
	{ID: "T5YIFR", Name: "US 5Y5Y Forward Inflation", Description: "5-year, 5-year forward inflation expectation rate", Frequency: m.Daily, Unit: "percent", Category: m.Inflation},
	// macro
	{ID: "UNRATE", Name: "US Unemployment Rate", Description: "Civilian unemployment rate", Frequency: m.Monthly, Unit: "percent", Category: m.Macro},
	{ID: "INDPRO", Name: "US Industrial Production", Description: "Industrial production total index", Frequency: m.Monthly, Unit: "index", Category: m.Macro},
	{ID: "UMCSENT", Name: "Michigan Consumer Sentiment", Description: "University of Michigan consumer sentiment", Frequency: m.Monthly, Unit: "index", Category: m.Macro},
	// monetary
	{ID: "DFF", Name: "Fed Funds Rate", Description: "Effective federal funds rate", Frequency: m.Daily, Unit: "percent", Category: m.Monetary},
	{ID: "SOFR", Name: "SOFR", Description: "Secured overnight financing rate", Frequency: m.Daily, Unit: "percent", Category: m.Monetary},
	{ID: "M2SL", Name: "US M2", Description: "M2 money stock", Frequency: m.Monthly, Unit: "USD bn", Category: m.Monetary},
	{ID: "DTWEXBGS", Name: "Trade-Weighted Dollar", Description: "Nominal broad US dollar index", Frequency: m.Daily, Unit: "index", Category: m.Monetary},
	// commodity
	{ID: "DCOILWTICO", Name: "WTI Crude", Description: "Crude oil price, West Texas Intermediate", Frequency: m.Daily, Unit: "USD/bbl", Category: m.Commodity},
	{ID: "DCOILBRENTEU", Name: "Brent Crude", Description: "Crude oil price, Brent Europe", Frequency: m.Daily, Unit: "USD/bbl", Category: m.Commodity},
}

var YahooSeries = []m.SeriesSpec{
	// commodities
	{ID: "CL=F", Name: "WTI Futures", Description: "NYMEX WTI crude oil front-month future", Frequency: m.Daily, Unit: "USD/bbl", Category: m.Commodity},
	{ID: "GC=F", Name: "Gold Futures", Description: "COMEX gold front-month future", Frequency: m.Daily, Unit: "USD/oz", Category: m.Commodity},
	{ID: "HG=F", Name: "Copper Futures", Description: "COMEX copper front-month future", Frequency: m.Daily, Unit: "USD/lb", Category: m.Commodity},
	// equity indices
	{ID: "^GSPC", Name: "S&P 500", Description: "S&P 500 index close", Frequency: m.Daily, Unit: "index", Category: m.Equity},
	{ID: "^STOXX50E", Name: "Euro Stoxx 50", Description: "Euro Stoxx 50 index close", Frequency: m.Daily, Unit: "index", Category: m.Equity},
	{ID: "FTSEMIB.MI", Name: "FTSE MIB", Description: "FTSE MIB index close", Frequency: m.Daily, Unit: "index", Category: m.Equity},
	{ID: "^VIX", Name: "VIX", Description: "CBOE volatility index close", Frequency: m.Daily, Unit: "index", Category: m.Equity},
	// fx
	{ID: "EURUSD=X", Name: "EUR/USD", Description: "Euro to US dollar spot", Frequency: m.Daily, Unit: "rate", Category: m.FX},
	{ID: "GBPUSD=X", Name: "GBP/USD", Description: "Pound sterling to US dollar spot", Frequency: m.Daily, Unit: "rate", Category: m.FX},
	{ID: "CHFUSD=X", Name: "CHF/USD", Description: "Swiss franc to US dollar spot", Frequency: m.Daily, Unit: "rate", Category: m.FX},
}

// Spreads are computed from fetched FRED series, minuend minus subtrahend
// on shared dates.
var Spreads = []m.SpreadFormula{
	{Name: "BTP_BUND_SPREAD", Description: "Italy vs Germany 10Y sovereign spread", Minuend: "IRLTLT01ITM156N", Subtrahend: "IRLTLT01DEM156N"},
	{Name: "OAT_BUND_SPREAD", Description: "France vs Germany 10Y sovereign spread", Minuend: "IRLTLT01FRM156N", Subtrahend: "IRLTLT01DEM156N"},
	{Name: "BONOS_BUND_SPREAD", Description: "Spain vs Germany 10Y sovereign spread", Minuend: "IRLTLT01ESM156N", Subtrahend: "IRLTLT01DEM156N"},
	{Name: "UST_2S10S", Description: "US Treasury 10Y minus 2Y yield curve slope", Minuend: "DGS10", Subtrahend: "DGS2"},
}

// TargetCount is the coverage denominator: every identifier the run is
// expected to fetch.
func TargetCount() int {
	return len(FredSeries) + len(YahooSeries)
}
