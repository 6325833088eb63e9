// Package api exposes the donation rules and campaign data over HTTP.
//
// Every JSON response uses one envelope:
//
//	{"data": ..., "meta": {...}, "error": {"code": "...", "message": "...", "details": {...}}}
//
// Validation failures answer 422 with per-field messages in error.details,
// unknown projects 404 and malformed requests 400. Messages follow the
// language negotiated by i18n.Middleware (?lang=, the lang cookie or
// Accept-Language).
package api
