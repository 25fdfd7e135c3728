package response

type UserDeletedResponse struct {
	Message string `json:"message"`
}
