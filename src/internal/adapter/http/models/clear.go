package models

import "time"

type ClearResponse struct {
	Resource  string `json:"resource"`
	ClearedAt string `json:"clearedAt"`
}

func NewClearResponse(resource string, at time.Time) ClearResponse {
	return ClearResponse{
		Resource:  resource,
		ClearedAt: at.Format(time.RFC3339),
	}
}
