package domain

// Business status codes embedded in response envelopes.
const (
	StatusCodeSuccess    = "200"
	StatusCodeBadRequest = "400"
	StatusDescSuccess    = "Success"
)

// StatementEnvelope is the top-level statement response document.
type StatementEnvelope struct {
	Response StatementResponse `json:"MainStatement_Response"`
}

// StatementResponse carries the business status and, on success, the payload.
// Body is nil for failed requests so the key is absent on the wire.
type StatementResponse struct {
	MetaData MetaData       `json:"metaData"`
	Body     *StatementBody `json:"Body,omitempty"`
}

// MetaData wraps the embedded business status.
type MetaData struct {
	Status Status `json:"status"`
}

// Status is the business outcome of a request.
type Status struct {
	Code string `json:"code"`
	Desc string `json:"desc"`
}

// StatementBody wraps the payload.
type StatementBody struct {
	Payload StatementPayload `json:"Payload"`
}

// StatementPayload holds the sampled records.
type StatementPayload struct {
	Collection []TransactionRecord `json:"Collection"`
}

// NewStatementSuccess builds a success envelope. A nil slice is serialized as an empty array.
func NewStatementSuccess(records []TransactionRecord) StatementEnvelope {
	if records == nil {
		records = []TransactionRecord{}
	}
	return StatementEnvelope{
		Response: StatementResponse{
			MetaData: MetaData{Status: Status{Code: StatusCodeSuccess, Desc: StatusDescSuccess}},
			Body:     &StatementBody{Payload: StatementPayload{Collection: records}},
		},
	}
}

// NewStatementFailure builds a business-failure envelope with no body.
func NewStatementFailure(code, desc string) StatementEnvelope {
	return StatementEnvelope{
		Response: StatementResponse{
			MetaData: MetaData{Status: Status{Code: code, Desc: desc}},
		},
	}
}
