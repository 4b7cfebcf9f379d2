// Package httpapi is the HTTP dispatch layer over the taskhub core. It
// decodes JSON payloads, maps the core's sentinel errors onto status codes,
// and handles the transport-only concerns: CORS, request logging, and the
// bearer tokens guarding the user-update routes. No business rule lives
// here; every validation and mutation decision belongs to the stores and
// the account service.
package httpapi
