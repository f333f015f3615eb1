// Package auth implements Kalshi request authentication.
//
// Requests are signed with RSA-PSS (SHA-256, salt length equal to the digest
// length) over the concatenation of the millisecond timestamp, the HTTP
// method, and the request path. Query parameters and the request body are
// excluded from the signed message per the exchange's scheme.
package auth
