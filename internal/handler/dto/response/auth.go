package response

import "beautyverse-storefront/internal/usecase"

type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
	IsAdmin       bool   `json:"is_admin"`
}

func FromSession(s usecase.Session) *SessionResponse {
	id, ok := s.Current()
	if !ok {
		return &SessionResponse{}
	}
	return &SessionResponse{
		Authenticated: true,
		Username:      id.Username,
		IsAdmin:       id.IsAdmin,
	}
}

type AuthResultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
