// Package middleware groups the Fiber middleware used by the serve command.
//
//   - auth: rejects requests whose X-API-Key header does not match the configured
//     key. With no key configured every request passes.
//   - rayid: reuses the incoming X-Ray-ID header or generates a UUID, stores it in
//     the request locals as "ray_id" and echoes it on the response.
//
// rayid is registered first so request logs and handler logs carry the same id.
package middleware
