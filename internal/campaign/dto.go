package campaign

const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

type SendRequest struct {
	PosterID  uint32   `json:"posterId" binding:"required"`
	AgentIDs  []uint32 `json:"agentIds" binding:"required,min=1,max=500,dive,required"`
	Subject   string   `json:"subject" binding:"required,max=200"`
	Body      string   `json:"body" binding:"max=20000"`
	AttachPDF bool     `json:"attachPdf"`
}

type RecipientResult struct {
	AgentID   uint32 `json:"agentId"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`

	generatedPath string
}

// SendResponse counts distinct agent ids. Requested = Sent + Failed + Skipped,
// where Skipped are ids that are unknown or inactive.
type SendResponse struct {
	BatchID   string            `json:"batchId"`
	Requested int               `json:"requested"`
	Sent      int               `json:"sent"`
	Failed    int               `json:"failed"`
	Skipped   int               `json:"skipped"`
	Results   []RecipientResult `json:"results"`
}
