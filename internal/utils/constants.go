package utils

import "time"

// Application Constants
const (
	AppName    = "FreelanceHub"
	AppVersion = "1.0.0"

	// Default values
	DefaultLanguage = "en"
	DefaultCurrency = "USD"
	DefaultTimeZone = "UTC"

	// Pagination
	DefaultPageSize = 8
	MaxPageSize     = 100
	MinPageSize     = 1

	// Authentication
	JWTAccessTokenTTL   = 24 * time.Hour
	JWTRefreshTokenTTL  = 7 * 24 * time.Hour
	PasswordMinLength   = 8
	PasswordMaxLength   = 128
	SessionCookieName   = "token"
	SessionCookieMaxAge = JWTAccessTokenTTL

	// Review Constants
	MinReviewRating  = 1
	MaxReviewRating  = 5
	MaxCommentLength = 1000

	// Review writes retry on version contention before giving up.
	ReviewWriteAttempts = 5

	// Bid Constants
	MaxProposalLength = 5000
	MaxBidItems       = 20

	// Project Constants
	MaxProjectPrice = 99999999 // 8 digits, matching the legacy price cap
	MaxTitleLength  = 200

	// File Upload
	MaxImageSize    = 5 * 1024 * 1024  // 5MB
	MaxDocumentSize = 10 * 1024 * 1024 // 10MB
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	MsgInvalidCredentials = "invalid credentials"
	MsgUserNotFound       = "user not found"
	MsgUserExists         = "user already exists"
	MsgInvalidToken       = "invalid token"
	MsgInternalServer     = "internal server error"
	MsgUnauthorized       = "unauthorized"
	MsgForbidden          = "forbidden"
	MsgValidationFailed   = "validation failed"
	MsgProjectNotFound    = "project not found"
	MsgBidNotFound        = "bid not found"
	MsgReviewNotFound     = "review not found"
)

// Cache Keys
const (
	CacheUserPrefix    = "user:"
	CacheProjectPrefix = "project:"
	CacheTTL           = 15 * time.Minute
)

// Collection Names
const (
	CollectionUsers    = "users"
	CollectionProjects = "projects"
	CollectionBids     = "bids"
	CollectionEarnings = "earnings"
)
