package user

import (
	"bytes"
	"encoding/json"

	apperrors "user-api/pkg/errors"
)

// Field is a request attribute that must be a JSON string. Missing keys,
// null and values of any other JSON type decode with IsString false.
type Field struct {
	Value    string
	IsString bool
}

// UnmarshalJSON implements json.Unmarshaler. It never fails: type problems
// are reported by validation so they can be attributed to the field.
func (f *Field) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*f = Field{}
		return nil
	}
	*f = Field{Value: s, IsString: true}
	return nil
}

// Present reports whether the field holds a non-empty string.
func (f Field) Present() bool {
	return f.IsString && f.Value != ""
}

// String returns a Field holding s. Used to build requests in code.
func String(s string) Field {
	return Field{Value: s, IsString: true}
}

// CreateUserRequest represents the decoded payload for creating a new user.
type CreateUserRequest struct {
	Name  Field
	Email Field
}

// DecodeCreateUserRequest decodes a request body into a CreateUserRequest.
// A body that is not JSON yields a MalformedInputError; null and scalar
// values yield a ValidationError. Arrays decode with both fields absent.
// Keys are matched exactly, so "Name" or "EMAIL" do not count.
func DecodeCreateUserRequest(body []byte) (CreateUserRequest, error) {
	var req CreateUserRequest

	if !json.Valid(body) {
		var v any
		err := json.Unmarshal(body, &v)
		return req, apperrors.NewMalformedInputError(err)
	}

	switch bytes.TrimSpace(body)[0] {
	case '{':
	case '[':
		return req, nil
	default:
		return req, apperrors.NewValidationError(MsgBodyNotObject)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return req, apperrors.NewMalformedInputError(err)
	}

	if raw, ok := fields["name"]; ok {
		if err := req.Name.UnmarshalJSON(raw); err != nil {
			return req, apperrors.NewMalformedInputError(err)
		}
	}
	if raw, ok := fields["email"]; ok {
		if err := req.Email.UnmarshalJSON(raw); err != nil {
			return req, apperrors.NewMalformedInputError(err)
		}
	}
	return req, nil
}

// CreateUserResponse represents the response payload after creating a user.
type CreateUserResponse struct {
	User User
}

// ListUsersResponse represents the response payload for user listing.
type ListUsersResponse struct {
	Users []User
}

// User represents a user DTO (Data Transfer Object) for API responses.
type User struct {
	ID    int64
	Name  string
	Email string
}
