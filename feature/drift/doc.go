// Package drift detects templates and static files that exist in the
// repository but are never referenced by the server source.
//
// The check itself lives in the checks subpackage. This package wraps it for
// the different entry points:
//
//   - Service: runs the check and logs the outcome.
//   - Document / Publisher: JSON reports, saved locally or uploaded to object storage.
//   - Watcher: re-runs the check whenever the source or an asset directory changes.
//   - Handler / Feature: HTTP endpoints for the serve command.
//
// # HTTP Endpoints
//
//   - GET /drift : Checks templates and static files.
//   - GET /drift/templates : Checks templates only.
//   - GET /drift/static : Checks static files only.
package drift
