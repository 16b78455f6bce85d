package agent

import (
	"net/http"

	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
)

const (
	agentNotFound      = "AGENT_NOT_FOUND"      // errInfo
	agentAlreadyExists = "AGENT_ALREADY_EXISTS" // errInfo
)

var (
	ErrAgentNotFound      = sharedError.NewDomainError(agentNotFound)
	ErrAgentAlreadyExists = sharedError.NewDomainError(agentAlreadyExists)
)

func init() {
	sharedError.RegisterDomainErrorResponse(agentNotFound, sharedError.ErrorResponse{
		Status:    http.StatusNotFound,
		Code:      "AGENT-001",
		Message:   "여행사를 찾을 수 없습니다.",
		MessageEn: "Travel agent not found.",
	})

	sharedError.RegisterDomainErrorResponse(agentAlreadyExists, sharedError.ErrorResponse{
		Status:    http.StatusConflict,
		Code:      "AGENT-002",
		Message:   "이미 등록된 여행사 이메일입니다.",
		MessageEn: "A travel agent with this email already exists.",
	})
}
