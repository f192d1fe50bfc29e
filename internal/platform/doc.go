// Package platform provides cross-platform file output. Manifests are staged
// in a temporary file next to the target and renamed into place, so readers
// never observe a partially written file and no temporary file outlives a
// failed write.
package platform
