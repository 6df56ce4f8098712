// Package otp generates the short numeric one-time passwords that are
// emailed to accounts during registration.
//
// Codes are random, fixed-width digit strings. They are stored alongside the
// account with an expiry and compared verbatim on verification, so leading
// zeros are significant.
package otp
