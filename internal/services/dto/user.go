package dto

// ListUsersRequest filters and sorts the admin user listing.
type ListUsersRequest struct {
	Search    string `form:"search" validate:"omitempty,max=200"`
	Role      string `form:"role" validate:"omitempty,user_role"`
	Status    string `form:"status" validate:"omitempty,user_status"`
	SortBy    string `form:"sort_by" validate:"omitempty,oneof=created_at name email last_login role status"`
	SortOrder string `form:"sort_order" validate:"omitempty,oneof=asc desc"`
	Limit     int    `form:"limit" validate:"omitempty,min=1,max=100"`
	Offset    int    `form:"offset" validate:"omitempty,min=0"`
}

type ListUsersResponse struct {
	Users []ProfileResponse `json:"users"`
	Total int64             `json:"total"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,user_role"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,user_status"`
}

type BulkDeleteUsersRequest struct {
	UserIDs []string `json:"user_ids" validate:"required,min=1,dive,uuid"`
}

type BulkDeleteUsersResponse struct {
	DeletedCount int64    `json:"deleted_count"`
	DeletedIDs   []string `json:"deleted_ids"`
}
