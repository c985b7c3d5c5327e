package admin

import "codeberg.org/licitgov/server/licitgov/users"

// UsersResponse wraps the full user list
type UsersResponse struct {
	Users []*users.User `json:"users"`
}

// UserResponse wraps a single user
type UserResponse struct {
	User *users.User `json:"user"`
}

// StatsResponse carries aggregate platform numbers
type StatsResponse struct {
	TotalUsers     int `json:"total_users"`
	ActiveUsers    int `json:"active_users"`
	TotalDocuments int `json:"total_documents"`
}
