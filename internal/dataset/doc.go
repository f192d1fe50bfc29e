// Package dataset reads tabular page exports (CSV or XLSX) into an ordered,
// string-typed Dataset. Columns are addressed by their exact header name.
// Any failure to interpret the input as a table is reported as *ParseError.
package dataset
