// file: model/request.go

package model

// RegistrationSubmission is the farmer sign-up form as submitted by the client.
// The validate tags are evaluated by service.RegistrationValidator, which reports
// only the first failing rule.
type RegistrationSubmission struct {
	FullName        string     `json:"fullName" validate:"required,max=255"`
	FarmName        string     `json:"farmName" validate:"required,max=255"`
	Email           string     `json:"email" validate:"required,loose_email,max=255"`
	Mobile          string     `json:"mobile" validate:"required,mobile10"`
	Password        string     `json:"password" validate:"required,min=8,max_bytes=72"`
	ConfirmPassword string     `json:"confirmPassword" validate:"required,eqfield=Password"`
	FarmLocation    string     `json:"farmLocation" validate:"required,max=255"`
	FarmerType      FarmerType `json:"farmerType" validate:"required,farmer_type"`
	// ProfilePhoto is an optional data URI produced by the photo upload endpoint.
	ProfilePhoto string `json:"profilePhoto,omitempty"`
}

// ValidSubmission is a RegistrationSubmission that passed every validation rule.
// Only the validator constructs one.
type ValidSubmission struct {
	FullName     string
	FarmName     string
	Email        string
	Mobile       string
	Password     string
	FarmLocation string
	FarmerType   FarmerType
	Photo        *EncodedPhoto
}

// LoginRequest defines the payload for farmer authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,loose_email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// PhotoResponse is returned by the photo upload endpoint.
type PhotoResponse struct {
	ProfilePhoto string `json:"profilePhoto"`
	ContentType  string `json:"contentType"`
	Size         int64  `json:"size"`
}
