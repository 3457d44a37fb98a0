package request

type OpenSessionRequest struct {
	TerminalID string `json:"terminal_id" binding:"required,max=64"`
}
