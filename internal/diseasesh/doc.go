// Package diseasesh provides an HTTP client for the disease.sh COVID-19 API.
//
// # Overview
//
// The dashboard only reads from the API. Four endpoints are used:
//
//   - GET /v3/covid-19/all                    worldwide Summary
//   - GET /v3/covid-19/countries              []Country in API order
//   - GET /v3/covid-19/countries/{code}       a single Country (ISO2 or name)
//   - GET /v3/covid-19/historical/all?lastdays=N   cumulative History
//
// # Error Handling
//
// Every call returns either a decoded payload or one of two error kinds:
//
//   - *NetworkError: the round trip failed, timed out, or returned a non-2xx
//     status (StatusCode is set in that case).
//   - *ParseError: the body was not JSON, or was JSON of the wrong shape.
//     Shape checks run with gjson before decoding so an HTML error page or an
//     empty object is reported as a ParseError rather than a zero Summary.
//
// Use errors.As, IsNetworkError or IsParseError to classify.
//
// There is no retry and no caching. Each request is bounded by the client
// timeout (DefaultTimeout unless WithTimeout is given) and by the caller's
// context.
//
// # Metrics
//
// Each fetch updates two VictoriaMetrics series in the default set:
//
//	covidboard_fetch_total{op="country",outcome="network_error"}
//	covidboard_fetch_duration_seconds{op="country"}
//
// The app package exposes them on /metrics when metrics_addr is configured.
//
// # Testing
//
// Fetcher is the interface the state package depends on. Tests either stub it
// or point a real Client at httptest / httpmock via WithTransport.
package diseasesh
