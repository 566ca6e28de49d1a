// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts HTTP to the outfit service: a wishlist is
// decoded and validated here, handed to the service, and every service
// failure is mapped to a status code and a client-safe message.
package api
