package response

import "fmt"

const (
	CodeInvalidID             = "InvalidId"
	CodeInvalidYear           = "InvalidYear"
	CodeInvalidPrice          = "InvalidPrice"
	CodeInvalidAgeRestriction = "InvalidAgeRestriction"
	CodeInvalidTitle          = "InvalidTitle"
	CodeInvalidBody           = "InvalidBody"
	CodeTitleLocked           = "TitleLocked"
	CodeNotFound              = "NotFound"
	CodeInternal              = "InternalError"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type MovieNotFoundResponse struct {
	Code    string `json:"code"`
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func InvalidIDResponse() ErrorResponse {
	return ErrorResponse{Code: CodeInvalidID, Message: "Id must be a non-negative integer"}
}

func InvalidYearResponse() ErrorResponse {
	return ErrorResponse{Code: CodeInvalidYear, Message: "Year must be 1888 or later"}
}

func InvalidPriceResponse() ErrorResponse {
	return ErrorResponse{Code: CodeInvalidPrice, Message: "Price must be greater than zero"}
}

func InvalidAgeRestrictionResponse() ErrorResponse {
	return ErrorResponse{Code: CodeInvalidAgeRestriction, Message: "Age restriction must be greater than zero"}
}

func InvalidTitleResponse() ErrorResponse {
	return ErrorResponse{Code: CodeInvalidTitle, Message: "Title must not be empty"}
}

func InvalidBodyResponse() ErrorResponse {
	return ErrorResponse{Code: CodeInvalidBody, Message: "Invalid request body"}
}

func TitleLockedResponse(message string) ErrorResponse {
	return ErrorResponse{Code: CodeTitleLocked, Message: message}
}

func InternalErrorResponse() ErrorResponse {
	return ErrorResponse{Code: CodeInternal, Message: "Internal server error"}
}

func NewMovieNotFoundResponse(id int64) MovieNotFoundResponse {
	return MovieNotFoundResponse{
		Code:    CodeNotFound,
		ID:      id,
		Message: fmt.Sprintf("Movie with id %d not found", id),
	}
}
