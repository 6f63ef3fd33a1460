// Package domain holds the types shared across the client: the login
// session, the uniform API result, and the open return-code enumeration.
package domain
