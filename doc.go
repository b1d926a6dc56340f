// Package compound projects the growth of investments earning compound
// interest with recurring contributions, and sums those projections across a
// portfolio.
//
// The core functionalities include:
//   - Projection: Project turns an Investment into a year by year series of
//     PeriodRecord and its final totals. Interest is compounded, and the
//     contribution paid, once per period of the investment Frequency.
//   - Aggregation: Aggregate sums the final figures of several investments
//     into PortfolioTotals, including the blended effective rate.
//   - Portfolio: an immutable, ordered collection of investments with stable
//     identifiers.
//   - Data Persistence: encoding and decoding of investments to and from a
//     JSONL stream, one investment per line.
//
// The engine is stateless: every call reads its own input and allocates its
// own output, so it is safe for concurrent use.
//
// This package serves as the foundational logic for the `invest`
// command-line tool and its HTTP API.
package compound
