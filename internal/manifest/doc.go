// Package manifest builds llm.txt manifests from page exports.
//
// A manifest is a business description header followed by one markdown
// bullet per page:
//
//	> Business Description: We sell widgets
//
//	- [A Page](https://a.com): desc A
//
// ValidateSchema checks that a dataset carries the required columns declared
// in the embedded schema/dataset.schema.json. Render turns a valid dataset
// into the manifest text. Values are inserted verbatim, without escaping.
package manifest
