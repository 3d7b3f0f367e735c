package handler

// --- Request / Response types ---

type createUserRequest struct {
	FullName string `json:"fullName" example:"Alice Smith"`
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"Passw0rd!"`
}

type editUserRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	FullName string `json:"fullName,omitempty" example:"Alice Jones"`
	Password string `json:"password,omitempty" example:"N3wPassw0rd!"`
}

type deleteUserRequest struct {
	Email string `json:"email" example:"alice@example.com"`
}

type loginRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"Passw0rd!"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type userItem struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type listUsersResponse struct {
	Users []userItem `json:"users"`
}

type uploadImageResponse struct {
	Message  string `json:"message"`
	FilePath string `json:"filePath"`
}

type errorResponse struct {
	Error string `json:"error"`
}

const (
	msgUserCreated    = "User created successfully."
	msgUserUpdated    = "User updated successfully."
	msgUserDeleted    = "User deleted successfully."
	msgUserLoggedIn   = "User authenticated successfully."
	msgImageUploaded  = "Image uploaded successfully."
	msgInvalidPayload = "Invalid request payload."

	emailFormField = "email"
)
