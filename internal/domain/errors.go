package domain

import "errors"

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrInterestNotFound = errors.New("interest not found")
	ErrEmailTaken       = errors.New("email already registered")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidStatus      = errors.New("invalid profile status")
	ErrInvalidMobile      = errors.New("invalid mobile number")
	ErrProfileLocked      = errors.New("profile can no longer be edited")

	ErrSelfInterest  = errors.New("cannot express interest in yourself")
	ErrAdminInterest = errors.New("admin accounts cannot express interest")
	ErrNotTarget     = errors.New("only the interest target may respond")

	ErrSessionNotFound   = errors.New("chat session not found")
	ErrNoHobbiesSelected = errors.New("select at least one hobby")
	ErrSessionFinished   = errors.New("chat session already finished")
	ErrInvalidAnswer     = errors.New("answer is not one of the offered options")
)
