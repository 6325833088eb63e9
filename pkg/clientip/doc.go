// Package clientip resolves the address of the client behind a request.
//
// Proxy headers are consulted in a fixed order (CF-Connecting-IP,
// X-Forwarded-For, X-Real-IP) before falling back to RemoteAddr. Only
// syntactically valid addresses are returned; deployments that are not
// behind a trusted proxy should strip these headers at the edge.
package clientip
