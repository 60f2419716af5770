// Package http implements the HTTP transport layer of the proxy.
//
// It exposes route wiring, the two jcadata handlers, and the middleware used
// in front of them. Request tracing, access logging, response compression,
// the request deadline, the shared-secret check and response signing are
// handled here before requests are delegated to the service layer.
package http
