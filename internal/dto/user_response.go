package dto

// UserResponse defines the public view of a user.
type UserResponse struct {
	UserID   string `json:"userID"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// ToUserResponse converts anything exposing user accessors to the DTO.
func ToUserResponse(user interface {
	GetUserID() string
	GetUsername() string
	GetName() string
}) UserResponse {
	return UserResponse{
		UserID:   user.GetUserID(),
		Username: user.GetUsername(),
		Name:     user.GetName(),
	}
}
