package dto

type AccountCreateRequest struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

// AccountUpdateRequest carries partial edits; Status is a pointer so that an
// explicit disable (0) is distinguishable from "leave unchanged".
type AccountUpdateRequest struct {
	Account  string `json:"account,omitempty"`
	Nickname string `json:"nickname,omitempty"`
	Password string `json:"password,omitempty"`
	Status   *int   `json:"status,omitempty"`
}
